package config_test

import (
	"testing"
	"time"

	"go-hr-portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COMPANY_ID", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")

	cfg, err := config.Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", cfg.App.CompanyID)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "/uploads", cfg.Upload.URLPrefix)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("COMPANY_ID", "2f1d3c0e-8d8a-4b1a-9a55-6a3b7c1d2e3f")

	cfg, err := config.Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
	assert.Contains(t, cfg.Database.DSN(), "port=6543")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("tenant must be a uuid", func(t *testing.T) {
		t.Setenv("COMPANY_ID", "acme")

		_, err := config.Load("testdata/does-not-exist.env")
		assert.ErrorContains(t, err, "COMPANY_ID")
	})

	t.Run("production needs a jwt secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load("testdata/does-not-exist.env")
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
}
