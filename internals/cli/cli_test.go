package cli

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reach_backend/internals/helpers"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{{"serve"}, {"migrate"}, {"admin", "create"}} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, flag := range []string{"name", "email", "password"} {
		assert.NotNil(t, adminCreateCmd.Flags().Lookup(flag), flag)
	}
}

func TestAdminCreate_ValidatesBeforeConnecting(t *testing.T) {
	adminName, adminEmail, adminPassword = "Root", "not-an-email", "secret1"
	t.Cleanup(func() { adminName, adminEmail, adminPassword = "", "", "" })

	err := runAdminCreate(context.Background())
	assert.Equal(t, helpers.KindBadRequest, helpers.KindOf(err))
}

func TestNewAppRendersUnknownRoutes(t *testing.T) {
	app := newApp(zerolog.Nop())
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/nope", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body["error"])
}
