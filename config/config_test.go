package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TINYSHOP_SYSTEM_WORKER_DIR", t.TempDir())

	cfg := LoadConfig("")
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 5228, cfg.Web.Port)
	assert.True(t, cfg.Database.Seed)
	assert.DirExists(t, cfg.GetLogDir())
	assert.DirExists(t, cfg.GetDataDir())

	// defaults are not mutated by loading
	assert.Equal(t, "/var/tinyshop", DefaultAppConfig.System.Workdir)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfile := filepath.Join(dir, "tinyshop.yml")
	content := `
system:
  workdir: ` + dir + `
web:
  port: 8080
database:
  type: SQLite
  name: catalog.db
  seed: false
logger:
  mode: production
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))
	t.Setenv("TINYSHOP_WEB_PORT", "9090")
	t.Setenv("TINYSHOP_DB_DEBUG", "true")
	t.Setenv("TINYSHOP_DB_MAX_CONN", "not-a-number")

	cfg := LoadConfig(cfile)
	assert.Equal(t, dir, cfg.System.Workdir)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "catalog.db", cfg.Database.Name)
	assert.False(t, cfg.Database.Seed)
	assert.True(t, cfg.Database.Debug)
	assert.Equal(t, 100, cfg.Database.MaxConn)
	assert.Equal(t, "production", cfg.Logger.Mode)
	// untouched sections keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Web.Host)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("TINYSHOP_SYSTEM_WORKER_DIR", t.TempDir())
	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Equal(t, DefaultAppConfig.Web.Port, cfg.Web.Port)
}
