package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real ~/.easycv.yaml or .env leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("PWD", dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Download.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Empty(t, cfg.OCR.Tessdata)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "easycv.yaml", `
log:
  level: debug
  format: json
download:
  timeout: 5s
cache:
  enabled: false
`)

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.Download.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, ".", cfg.Output.Dir, "unset keys keep their default")
}

func TestLoad_HomeConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".easycv.yaml", "output:\n  dir: /tmp/out\n")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "easycv.yaml", "log:\n  level: debug\n")
	t.Setenv("EASYCV_LOG_LEVEL", "warn")

	cfg, err := Load(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "EASYCV_OCR_TESSDATA=/opt/tessdata\n")
	t.Cleanup(func() { os.Unsetenv("EASYCV_OCR_TESSDATA") })

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "/opt/tessdata", cfg.OCR.Tessdata)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err, "explicit config file must exist")

	_, err = Load(Options{EnvFile: filepath.Join(dir, "missing.env")})
	assert.Error(t, err, "explicit env file must exist")

	bad := writeFile(t, dir, "bad.yaml", "log:\n  format: xml\n")
	_, err = Load(Options{ConfigFile: bad})
	assert.ErrorContains(t, err, "log.format")

	zero := writeFile(t, dir, "zero.yaml", "download:\n  timeout: 0s\n")
	_, err = Load(Options{ConfigFile: zero})
	assert.ErrorContains(t, err, "download.timeout")
}
