package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `# global defaults
[production]
host=db.example.com
hostaddr=!10.0.0.1
port=5432
dbname=app
user=app_ro

[staging]
host=staging.example.com
dbname=app
password=s3cr#t

[local]
host=localhost
`

func writeServiceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeServiceFile(t, t.TempDir(), "pg_service.conf", sampleFile)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"production", "staging", "local"}, f.Names())
	assert.Equal(t, 3, f.Len())
	assert.True(t, filepath.IsAbs(f.Path))

	p, err := f.Profile("production")
	require.NoError(t, err)
	assert.Equal(t, "production", p.Name())
	assert.Equal(t, "!10.0.0.1", p.Value(AttrHostAddr))
	assert.Equal(t, "db.example.com", p.Value(AttrHost))

	staging, err := f.Profile("staging")
	require.NoError(t, err)
	assert.Equal(t, "s3cr#t", staging.Value("password"), "inline # must be kept")
	_, ok := staging.Get(AttrHostAddr)
	assert.False(t, ok)
}

func TestLoad_NoServices(t *testing.T) {
	path := writeServiceFile(t, t.TempDir(), "empty.conf", "# nothing here\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}

func TestFile_UnknownProfile(t *testing.T) {
	path := writeServiceFile(t, t.TempDir(), "pg_service.conf", sampleFile)
	f, err := Load(path)
	require.NoError(t, err)

	_, err = f.Profile("nope")
	assert.True(t, errors.Is(err, ErrUnknownService))
}

func TestFile_NamesIsCopy(t *testing.T) {
	path := writeServiceFile(t, t.TempDir(), "pg_service.conf", sampleFile)
	f, err := Load(path)
	require.NoError(t, err)

	names := f.Names()
	names[0] = "mutated"
	assert.Equal(t, "production", f.Names()[0])
}

func TestProfile_Immutable(t *testing.T) {
	attrs := map[string]string{"host": "a"}
	p := NewProfile("svc", attrs)
	attrs["host"] = "b"
	assert.Equal(t, "a", p.Value("host"))

	copied := p.Attributes()
	copied["host"] = "c"
	assert.Equal(t, "a", p.Value("host"))
}

func TestLocate(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := writeServiceFile(t, t.TempDir(), "custom.conf", sampleFile)
		got, err := Locate(path, "")
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Locate(filepath.Join(t.TempDir(), "missing.conf"), "")
		assert.ErrorIs(t, err, ErrServiceFileNotFound)
	})

	t.Run("configured beats env", func(t *testing.T) {
		dir := t.TempDir()
		configured := writeServiceFile(t, dir, "configured.conf", sampleFile)
		env := writeServiceFile(t, dir, "env.conf", sampleFile)
		t.Setenv(EnvServiceFile, env)

		got, err := Locate("", configured)
		require.NoError(t, err)
		assert.Equal(t, configured, got)
	})

	t.Run("env var", func(t *testing.T) {
		env := writeServiceFile(t, t.TempDir(), "env.conf", sampleFile)
		t.Setenv(EnvServiceFile, env)

		got, err := Locate("", "")
		require.NoError(t, err)
		assert.Equal(t, env, got)
	})

	t.Run("current directory before home", func(t *testing.T) {
		home := t.TempDir()
		writeServiceFile(t, home, userServiceFile, sampleFile)
		t.Setenv("HOME", home)
		t.Setenv(EnvServiceFile, "")

		cwd := t.TempDir()
		writeServiceFile(t, cwd, localServiceFile, sampleFile)
		chdir(t, cwd)

		got, err := Locate("", "")
		require.NoError(t, err)
		assert.Equal(t, localServiceFile, got)
	})

	t.Run("home directory", func(t *testing.T) {
		home := t.TempDir()
		want := writeServiceFile(t, home, userServiceFile, sampleFile)
		t.Setenv("HOME", home)
		t.Setenv(EnvServiceFile, "")
		chdir(t, t.TempDir())

		got, err := Locate("", "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvServiceFile, "/env/pg_service.conf")

	got := SearchPath("/configured.conf")
	assert.Equal(t, []string{
		"/configured.conf",
		"/env/pg_service.conf",
		localServiceFile,
		filepath.Join(home, userServiceFile),
		systemServiceFile,
	}, got)
}
