package connection

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"go-hr-portal/internal/config"
	"go-hr-portal/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectRedisWithRetry_Disabled(t *testing.T) {
	rdb, err := ConnectRedisWithRetry("", 3, zap.NewNop())

	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectGORMWithRetry_GivesUp(t *testing.T) {
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = 5 * time.Second })

	db, err := ConnectGORMWithRetry(config.DatabaseConfig{
		Host:       "127.0.0.1",
		User:       "nobody",
		Name:       "nothing",
		Port:       "1",
		SSLMode:    "disable",
		MaxRetries: 2,
	}, zap.NewNop())

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "after 2 retries")
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range entries {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.Equal(t, ups, downs)
	assert.True(t, ups["000002_create_requests"])
}
