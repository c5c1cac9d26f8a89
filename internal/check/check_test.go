package check

import (
	"os"
	"path/filepath"
	"testing"

	"pgsvc/internal/resolve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const services = `[production]
host=db.example.com
hostaddr=!10.0.0.1
port=6543
dbname=app
user=app_ro
sslmode=disable

[pinned]
host=db.example.com
hostaddr=203.0.113.9
sslmode=disable

[local]
host=localhost
port=5432
dbname=postgres
user=postgres
sslmode=disable
`

func writeServices(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "it's pg_service.conf")
	require.NoError(t, os.WriteFile(path, []byte(services), 0600))
	return path
}

func TestConfig_FromServiceFile(t *testing.T) {
	path := writeServices(t)

	cfg, err := Config(path, resolve.Args{"service=local"})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, uint16(5432), cfg.Port)
	assert.Equal(t, "postgres", cfg.Database)
	assert.Equal(t, "postgres", cfg.User)
	assert.Equal(t, applicationName, cfg.RuntimeParams["application_name"])
}

func TestConfig_PinsResolvedAddress(t *testing.T) {
	path := writeServices(t)

	cfg, err := Config(path, resolve.Args{"service=production", "hostaddr='192.168.1.5'"})
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.5", cfg.Host)
	assert.Equal(t, uint16(6543), cfg.Port)
	assert.Equal(t, "app", cfg.Database)
	assert.NotContains(t, cfg.RuntimeParams, "hostaddr")
	for _, fb := range cfg.Fallbacks {
		assert.Equal(t, "192.168.1.5", fb.Host)
	}
}

func TestConfig_LiteralHostAddr(t *testing.T) {
	path := writeServices(t)

	cfg, err := Config(path, resolve.Args{"service=pinned"})
	require.NoError(t, err)

	assert.Equal(t, "203.0.113.9", cfg.Host)
	assert.NotContains(t, cfg.RuntimeParams, "hostaddr")
}

func TestConfig_UnknownService(t *testing.T) {
	path := writeServices(t)

	_, err := Config(path, resolve.Args{"service=missing"})
	assert.Error(t, err)
}

func TestQuoteValue(t *testing.T) {
	assert.Equal(t, `'/tmp/pg_service.conf'`, quoteValue("/tmp/pg_service.conf"))
	assert.Equal(t, `'it\'s'`, quoteValue("it's"))
	assert.Equal(t, `'C:\\pg'`, quoteValue(`C:\pg`))
}
