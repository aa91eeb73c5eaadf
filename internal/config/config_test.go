package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: "9090"
  mode: test
database:
  host: db.local
  user: bhp
  dbname: bhp_test
redis:
  enabled: true
  addr: redis.local:6379
jwt:
  secret: from-file
rate_limit:
  enabled: true
  max_requests: 10
  window_sec: 30
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "bhp-api", cfg.JWT.Issuer)
	assert.Equal(t, 24, cfg.JWT.ExpirationHrs)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DATABASE_HOST", "env-host")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "postgres")
	t.Setenv("DATABASE_DBNAME", "bhp")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing jwt secret",
			content: `
database: {host: h, user: u, dbname: d}
`,
		},
		{
			name: "incomplete database",
			content: `
jwt: {secret: s}
database: {host: h}
`,
		},
		{
			name: "release without password",
			content: `
server: {mode: release}
jwt: {secret: s}
database: {host: h, user: u, dbname: d}
`,
		},
		{
			name: "redis enabled without address",
			content: `
jwt: {secret: s}
database: {host: h, user: u, dbname: d}
redis: {enabled: true}
`,
		},
		{
			name: "rate limit without redis",
			content: `
jwt: {secret: s}
database: {host: h, user: u, dbname: d}
rate_limit: {enabled: true}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_PostgresConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", d.PostgresConnectionString())
}
