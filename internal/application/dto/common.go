package dto

import "github.com/shopspring/decimal"

func init() {
	// rate y rating salen como número JSON (4.5), no como string ("4.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// Tamaños de página por recurso.
const (
	RestaurantPageSize = 10
	CommentPageSize    = 5
	ReviewPageSize     = 5
	UserPageSize       = 5
)

// PageRequest paginación por desplazamiento: "from" es el número de registros a saltar.
type PageRequest struct {
	From int `json:"from" query:"from" validate:"min=0"`
}

// ErrorResponse cuerpo de error HTTP, va dentro de {"ok": false, "err": ...}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
