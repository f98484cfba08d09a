package repository

// Page ventana de paginación skip/limit para listados.
type Page struct {
	Skip  int
	Limit int
}
