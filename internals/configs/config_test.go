package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "BCRYPT_COST", "WORKSHOPS_FILE", "IMAGES_DIR", "EMAIL_PROVIDER", "CORS_ALLOW_ORIGINS")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "workshops.json", cfg.Files.WorkshopsFile)
	assert.Equal(t, "images", cfg.Files.ImagesDir)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CorsAllowOrigins)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("BCRYPT_COST", "2")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestLoad_EmailProviders(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "smtp without user",
			env:     map[string]string{"EMAIL_PROVIDER": "smtp", "EMAIL_FROM": "reach@example.com"},
			wantErr: "SMTP_USER",
		},
		{
			name:    "resend without key",
			env:     map[string]string{"EMAIL_PROVIDER": "resend", "EMAIL_FROM": "reach@example.com"},
			wantErr: "RESEND_API_KEY",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"EMAIL_PROVIDER": "pigeon"},
			wantErr: "EMAIL_PROVIDER",
		},
		{
			name: "resend complete",
			env: map[string]string{
				"EMAIL_PROVIDER": "resend",
				"EMAIL_FROM":     "reach@example.com",
				"RESEND_API_KEY": "re_123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "EMAIL_PROVIDER", "EMAIL_FROM", "SMTP_USER", "RESEND_API_KEY")
			t.Setenv("JWT_SECRET", "test-secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: "5432", Name: "reach", SSLMode: "disable"}

	dsn := d.DSN("Reach'24")
	assert.Equal(t, "postgres://u:p@db:5432/reach?sslmode=disable&application_name=reach24&options=-c statement_timeout=3000", dsn)
}
