package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Resenas-api/internal/application/auth"
	"github.com/jhoicas/Resenas-api/internal/application/dto"
	"github.com/jhoicas/Resenas-api/internal/application/reviews"
	"github.com/jhoicas/Resenas-api/internal/application/usecase"
	"github.com/jhoicas/Resenas-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Resenas-api/internal/interfaces/http"
	"github.com/jhoicas/Resenas-api/pkg/logger"
)

type apiEnv struct {
	app    *fiber.App
	authUC *auth.AuthUseCase
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	s := memory.NewStore()
	authUC := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(s.Users()),
		RestaurantUC: usecase.NewRestaurantUseCase(s.Restaurants(), s.Users(), s.Comments(), s.Reviews()),
		CommentUC:    usecase.NewCommentUseCase(s.Comments(), s.Users(), s.Reviews()),
		ReviewUC:     usecase.NewReviewUseCase(s.Reviews(), s.Users()),
		Workflow:     reviews.NewWorkflowUseCase(memory.NewTxRunner(s), s.Users(), s.Restaurants(), s.Comments(), s.Reviews()),
	})
	return &apiEnv{app: app, authUC: authUC}
}

type session struct {
	id    string
	token string
}

// signup registra por POST /users y hace login por POST /login.
func (e *apiEnv) signup(t *testing.T, email, role string) session {
	t.Helper()
	status, body := e.call(t, http.MethodPost, "/users", "", fiber.Map{
		"name": "Test", "email": email, "password": "secreto1", "role": role,
	})
	require.Equal(t, http.StatusCreated, status, "%v", body)
	return e.login(t, email)
}

func (e *apiEnv) login(t *testing.T, email string) session {
	t.Helper()
	status, body := e.call(t, http.MethodPost, "/login", "", fiber.Map{"email": email, "password": "secreto1"})
	require.Equal(t, http.StatusOK, status, "%v", body)
	user := body["user"].(map[string]any)
	return session{id: user["id"].(string), token: body["token"].(string)}
}

func (e *apiEnv) admin(t *testing.T) session {
	t.Helper()
	_, err := e.authUC.CreateAdmin(context.Background(), "Root", "root@example.com", "secreto1")
	require.NoError(t, err)
	return e.login(t, "root@example.com")
}

func (e *apiEnv) call(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func errMessage(body map[string]any) string {
	e, _ := body["err"].(map[string]any)
	msg, _ := e["message"].(string)
	return msg
}

func (e *apiEnv) restaurant(t *testing.T, owner session) string {
	t.Helper()
	status, body := e.call(t, http.MethodPost, "/restaurants", owner.token, fiber.Map{
		"name": "La Esquina", "description": "Comida casera", "owner": owner.id,
	})
	require.Equal(t, http.StatusCreated, status, "%v", body)
	return body["restaurant"].(map[string]any)["id"].(string)
}

func TestAPI_Login(t *testing.T) {
	e := newAPI(t)
	e.signup(t, "ana@example.com", "")

	status, body := e.call(t, http.MethodPost, "/login", "", fiber.Map{"email": "ana@example.com", "password": "mal"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "User or password not valid", errMessage(body))

	status, body = e.call(t, http.MethodPost, "/login", "", fiber.Map{"email": "nadie@example.com", "password": "secreto1"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User or password not valid", errMessage(body), "email desconocido responde igual")
}

func TestAPI_Current(t *testing.T) {
	e := newAPI(t)
	s := e.signup(t, "ana@example.com", "")

	status, body := e.call(t, http.MethodGet, "/current", s.token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, s.id, body["user"].(map[string]any)["id"])

	status, _ = e.call(t, http.MethodGet, "/current", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_RegistroComoAdminProhibido(t *testing.T) {
	e := newAPI(t)
	status, body := e.call(t, http.MethodPost, "/users", "", fiber.Map{
		"name": "X", "email": "x@example.com", "password": "secreto1", "role": "ADMIN_ROLE",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "You cannot sign up as administrator", errMessage(body))

	status, _ = e.call(t, http.MethodPost, "/users", "", fiber.Map{"name": "X", "email": "no-es-email", "password": "secreto1"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAPI_ComentarioYResena(t *testing.T) {
	e := newAPI(t)
	owner := e.signup(t, "owner@example.com", "MANAGE_ROLE")
	user := e.signup(t, "user@example.com", "USER_ROLE")
	restaurantID := e.restaurant(t, owner)

	comment := fiber.Map{"restaurant": restaurantID, "rate": 4, "title": "Rico", "description": "Volveré", "owner": user.id}
	status, body := e.call(t, http.MethodPost, "/comments", user.token, comment)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	assert.Equal(t, true, body["ok"])
	c := body["comment"].(map[string]any)
	assert.Equal(t, float64(4), c["rate"])
	assert.Equal(t, true, c["opened"])
	commentID := c["id"].(string)
	assert.Equal(t, []any{commentID}, body["restaurant"].(map[string]any)["comments"])

	status, body = e.call(t, http.MethodPost, "/comments", user.token, comment)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "You already commented to this restaurant", errMessage(body))

	status, body = e.call(t, http.MethodPost, "/comments", owner.token, fiber.Map{
		"restaurant": restaurantID, "rate": 2, "title": "x", "owner": owner.id,
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Owner cannot create comments", errMessage(body))

	review := fiber.Map{"comment": commentID, "description": "Gracias por venir", "owner": owner.id}
	status, body = e.call(t, http.MethodPost, "/reviews", owner.token, review)
	require.Equal(t, http.StatusCreated, status, "%v", body)
	assert.Equal(t, "Review Created", body["message"])
	rv := body["review"].(map[string]any)
	closed := body["comment"].(map[string]any)
	assert.Equal(t, false, closed["opened"])
	assert.Equal(t, rv["id"], closed["review"])

	status, body = e.call(t, http.MethodPost, "/reviews", owner.token, review)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "That comment already reviewed", errMessage(body))

	status, _ = e.call(t, http.MethodPost, "/reviews", user.token, review)
	assert.Equal(t, http.StatusForbidden, status, "un usuario normal no reseña")

	status, body = e.call(t, http.MethodGet, "/restaurants/"+restaurantID, user.token, nil)
	require.Equal(t, http.StatusOK, status)
	detail := body["restaurant"].(map[string]any)
	assert.Equal(t, owner.id, detail["owner"].(map[string]any)["id"])
	expanded := detail["comments"].([]any)[0].(map[string]any)
	assert.Equal(t, user.id, expanded["user"].(map[string]any)["id"])
	assert.Equal(t, owner.id, expanded["review"].(map[string]any)["owner"].(map[string]any)["id"])
}

func TestAPI_BusquedaPorRateYDueno(t *testing.T) {
	e := newAPI(t)
	owner := e.signup(t, "owner@example.com", "MANAGE_ROLE")
	user := e.signup(t, "user@example.com", "")
	restaurantID := e.restaurant(t, owner)

	status, _ := e.call(t, http.MethodPost, "/comments", user.token, fiber.Map{
		"restaurant": restaurantID, "rate": 3.5, "title": "Bien", "owner": user.id,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := e.call(t, http.MethodGet, "/restaurants/search/rate?rate=4", user.token, nil)
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Len(t, body["restaurants"], 1, "3.5 > 4-1")

	status, body = e.call(t, http.MethodGet, "/restaurants/search/rate", user.token, fiber.Map{"rate": 5})
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Empty(t, body["restaurants"], "3.5 no supera 5-1")

	status, body = e.call(t, http.MethodGet, "/restaurants/search/rate", user.token, nil)
	assert.Equal(t, http.StatusBadRequest, status, "sin rate no hay piso")
	assert.Equal(t, "campos inválidos: rate (required)", errMessage(body))

	status, _ = e.call(t, http.MethodGet, "/restaurants/search/rate?rate=abc", user.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = e.call(t, http.MethodGet, "/restaurants/search/owner?owner="+owner.id, owner.token, nil)
	require.Equal(t, http.StatusOK, status, "%v", body)
	assert.Len(t, body["restaurants"], 1)

	status, _ = e.call(t, http.MethodGet, "/restaurants/search/owner?owner="+owner.id, user.token, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAPI_MatrizDeRolesNoModifica(t *testing.T) {
	e := newAPI(t)
	owner := e.signup(t, "owner@example.com", "MANAGE_ROLE")
	user := e.signup(t, "user@example.com", "")
	restaurantID := e.restaurant(t, owner)

	for _, tok := range []string{user.token, owner.token} {
		status, body := e.call(t, http.MethodPut, "/restaurants/"+restaurantID, tok, fiber.Map{"name": "Hackeado"})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", body["err"].(map[string]any)["code"])

		status, _ = e.call(t, http.MethodDelete, "/restaurants/"+restaurantID, tok, nil)
		assert.Equal(t, http.StatusForbidden, status)
	}

	status, body := e.call(t, http.MethodGet, "/restaurants/"+restaurantID, user.token, nil)
	require.Equal(t, http.StatusOK, status)
	r := body["restaurant"].(map[string]any)
	assert.Equal(t, "La Esquina", r["name"])
	assert.Equal(t, true, r["status"])
}

func TestAPI_AdminActualizaYBorra(t *testing.T) {
	e := newAPI(t)
	admin := e.admin(t)
	owner := e.signup(t, "owner@example.com", "MANAGE_ROLE")
	restaurantID := e.restaurant(t, owner)

	status, body := e.call(t, http.MethodPut, "/restaurants/"+restaurantID, admin.token, fiber.Map{"name": "Renovado", "owner": "ignorado"})
	require.Equal(t, http.StatusOK, status, "%v", body)
	r := body["restaurant"].(map[string]any)
	assert.Equal(t, "Renovado", r["name"])
	assert.Equal(t, owner.id, r["owner"], "owner no está en la lista de campos editables")

	status, _ = e.call(t, http.MethodDelete, "/restaurants/"+restaurantID, admin.token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = e.call(t, http.MethodGet, "/restaurants", admin.token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["restaurants"])

	status, _ = e.call(t, http.MethodGet, "/restaurants/"+restaurantID, admin.token, nil)
	assert.Equal(t, http.StatusOK, status, "by-id ignora status")

	status, _ = e.call(t, http.MethodDelete, "/restaurants/00000000-0000-0000-0000-00000000abcd", admin.token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_CuentaDadaDeBajaPierdeAcceso(t *testing.T) {
	e := newAPI(t)
	admin := e.admin(t)
	user := e.signup(t, "user@example.com", "")

	status, _ := e.call(t, http.MethodDelete, "/users/"+user.id, admin.token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := e.call(t, http.MethodGet, "/current", user.token, nil)
	assert.Equal(t, http.StatusForbidden, status, "el token sigue siendo válido pero la cuenta no")
	assert.Equal(t, "cuenta inactiva", errMessage(body))
}

func TestAPI_Paginacion(t *testing.T) {
	e := newAPI(t)
	owner := e.signup(t, "owner@example.com", "MANAGE_ROLE")
	for i := 0; i < dto.RestaurantPageSize+1; i++ {
		e.restaurant(t, owner)
	}

	status, body := e.call(t, http.MethodGet, "/restaurants", owner.token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["restaurants"], dto.RestaurantPageSize)

	status, body = e.call(t, http.MethodGet, "/restaurants?from=10", owner.token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["restaurants"], 1)

	status, body = e.call(t, http.MethodGet, "/restaurants", owner.token, fiber.Map{"from": 10})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["restaurants"], 1, "from también se acepta en el cuerpo")

	status, _ = e.call(t, http.MethodGet, "/restaurants?from=-1", owner.token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
