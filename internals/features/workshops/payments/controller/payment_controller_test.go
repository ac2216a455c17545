package controller_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reach_backend/internals/databases/dbtest"
	userModel "reach_backend/internals/features/users/model"
	"reach_backend/internals/features/workshops/catalog"
	"reach_backend/internals/features/workshops/payments/controller"
	"reach_backend/internals/features/workshops/payments/model"
	"reach_backend/internals/features/workshops/payments/route"
	"reach_backend/internals/features/workshops/payments/service"
	"reach_backend/internals/helpers"
	"reach_backend/internals/services/artifacts"
	"reach_backend/internals/services/mailer"
)

type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, msg mailer.Message) bool { return true }

type fixedCatalog struct{}

func (fixedCatalog) Load() (catalog.Names, error) {
	return catalog.Names{"1": "Drone Building"}, nil
}

type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	svc := service.NewPaymentService(db, fixedCatalog{}, artifacts.NewFileStore(t.TempDir()), nopNotifier{}, "Reach'24", zerolog.Nop())

	app := fiber.New()
	actor := uuid.New()
	r := app.Group("/workshops", func(c *fiber.Ctx) error {
		c.Locals(helpers.LocAdminID, actor)
		return c.Next()
	})
	route.WorkshopPaymentRoutes(r, controller.NewPaymentController(svc, zerolog.Nop()))
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestSuccessThenAlreadyResolved(t *testing.T) {
	app, db := newApp(t)
	u := &userModel.UserModel{AbacusID: "A001", Name: "Asha", Email: "asha@x.com"}
	require.NoError(t, db.Create(u).Error)
	require.NoError(t, db.Create(&model.WorkshopPaymentModel{
		UserID: u.ID, WorkshopID: 1, PaymentMobile: "9111111111",
		Screenshot: "t1.png", TransactionID: "T1", Status: model.PaymentStatusPending,
	}).Error)

	status, env := do(t, app, fiber.MethodGet, "/workshops/payments/pending", "")
	assert.Equal(t, fiber.StatusOK, status)
	var pending []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "Drone Building", pending[0]["workshopName"])

	status, env = do(t, app, fiber.MethodPost, "/workshops/payments/success", `{"transactionId":"T1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, env.Error)

	status, env = do(t, app, fiber.MethodPost, "/workshops/payments/success", `{"transactionId":"T1"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error)
	assert.Equal(t, "Invalid Transaction ID", env.Message)

	status, env = do(t, app, fiber.MethodGet, "/workshops/1/registrations", "")
	assert.Equal(t, fiber.StatusOK, status)
	var regs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &regs))
	require.Len(t, regs, 1)
	assert.Equal(t, "A001", regs[0]["abacusId"])
}

func TestBadRequests(t *testing.T) {
	app, _ := newApp(t)

	cases := []struct {
		name, method, path, body string
	}{
		{"missing transaction id", fiber.MethodPost, "/workshops/payments/failure", `{}`},
		{"malformed body", fiber.MethodPost, "/workshops/payments/success", `{"transactionId":`},
		{"cash with bad user id", fiber.MethodPost, "/workshops/payments/cash", `{"userId":"x","workshopId":1}`},
		{"cash with unknown workshop", fiber.MethodPost, "/workshops/payments/cash", `{"userId":"` + uuid.NewString() + `","workshopId":9}`},
		{"non numeric workshop id", fiber.MethodGet, "/workshops/abc/unpaid", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := do(t, app, tc.method, tc.path, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "BAD_REQUEST", env.Error)
		})
	}
}

func TestEmptyListIsArray(t *testing.T) {
	app, _ := newApp(t)

	status, env := do(t, app, fiber.MethodGet, "/workshops/1/payments", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}
