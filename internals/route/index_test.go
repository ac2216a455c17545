package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reach_backend/internals/configs"
	"reach_backend/internals/databases/dbtest"
	authModel "reach_backend/internals/features/admins/auth/model"
	authService "reach_backend/internals/features/admins/auth/service"
	"reach_backend/internals/features/workshops/catalog"
	routeDetails "reach_backend/internals/route/details"
	"reach_backend/internals/services/artifacts"
	"reach_backend/internals/services/mailer"
	"reach_backend/internals/services/token"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := dbtest.Open(t)
	log := zerolog.Nop()

	hash, err := authService.HashPassword("rightpass", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&authModel.AdminModel{Name: "Root", Email: "root@x.com", Password: hash}).Error)

	dir := t.TempDir()
	app := fiber.New()
	SetupRoutes(app, routeDetails.Deps{
		DB:        db,
		Config:    configs.Config{AppName: "Reach'24", Environment: "test", Auth: configs.AuthConfig{BcryptCost: bcrypt.MinCost}},
		Logger:    log,
		Tokens:    token.NewService("secret"),
		Mailer:    mailer.NewService(mailer.NewLogSender(log), log),
		Catalog:   catalog.New(dir + "/workshops.json"),
		Artifacts: artifacts.NewFileStore(dir),
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, bearer, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestLoginThenGuardedRoutes(t *testing.T) {
	app := newApp(t)

	status, _ := send(t, app, fiber.MethodGet, "/api/admin/queries", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := send(t, app, fiber.MethodPost, "/api/admin/login", "", `{"email":"root@x.com","password":"nope"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["error"])

	status, body = send(t, app, fiber.MethodPost, "/api/admin/login", "", `{"email":"ghost@x.com","password":"rightpass"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = send(t, app, fiber.MethodPost, "/api/admin/login", "", `{"email":"root@x.com","password":"rightpass"}`)
	require.Equal(t, fiber.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	tok, _ := data["token"].(string)
	require.NotEmpty(t, tok)

	status, body = send(t, app, fiber.MethodGet, "/api/admin/queries", tok, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, body["data"])

	status, _ = send(t, app, fiber.MethodPost, "/api/admin/add", tok, `{"name":"Second","email":"second@x.com","password":"secret1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	status, body = send(t, app, fiber.MethodPost, "/api/admin/add", tok, `{"name":"Second","email":"second@x.com","password":"secret1"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error"])

	status, _ = send(t, app, fiber.MethodPost, "/api/admin/change-password", tok, `{"password":"rightpass","newPassword":"rightpass"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMissingWorkshopMetadataIsInternal(t *testing.T) {
	app := newApp(t)
	_, body := send(t, app, fiber.MethodPost, "/api/admin/login", "", `{"email":"root@x.com","password":"rightpass"}`)
	tok := body["data"].(map[string]any)["token"].(string)

	status, body := send(t, app, fiber.MethodGet, "/api/admin/workshops/payments/pending", tok, "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestHealthAndMetrics(t *testing.T) {
	app := newApp(t)

	status, body := send(t, app, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body["status"])

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUnknownAdminPathIsNotFound(t *testing.T) {
	app := newApp(t)

	status, _ := send(t, app, fiber.MethodGet, "/api/admin/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = send(t, app, fiber.MethodGet, "/api/admin/workshops/payments/pending", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = send(t, app, fiber.MethodPost, "/api/admin/add", "", `{}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
