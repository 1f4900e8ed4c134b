package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcache/internal/adapters/config"
	"go.trai.ch/objcache/internal/core/domain"
)

func newLoader(env map[string]string) *config.Loader {
	return &config.Loader{
		Getenv:      func(key string) string { return env[key] },
		DefaultRoot: func() (string, error) { return "/default/objcache", nil },
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := newLoader(nil).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root:       "/default/objcache",
		Lock:       domain.LockSingleWriter,
		Encoding:   domain.EncodingBase64,
		Validation: domain.ValidateMtime,
		LogLevel:   "info",
		LogFormat:  domain.LogPretty,
	}, cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "cache")
	writeConfig(t, dir, `
root: `+root+`
lock: locked
encoding: hex
validation: content
log:
  level: debug
  format: json
`)

	cfg, err := newLoader(nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, domain.LockLocked, cfg.Lock)
	assert.Equal(t, domain.EncodingHex, cfg.Encoding)
	assert.Equal(t, domain.ValidateContent, cfg.Validation)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.LogJSON, cfg.LogFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
root: /from/file
lock: locked
encoding: hex
`)

	cfg, err := newLoader(map[string]string{
		config.EnvRoot:       "/from/env",
		config.EnvEncoding:   "base64url",
		config.EnvLogLevel:   "warn",
		config.EnvLogFormat:  "json",
		config.EnvValidation: "content",
	}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Root)
	assert.Equal(t, domain.LockLocked, cfg.Lock, "unset variables keep file values")
	assert.Equal(t, domain.EncodingBase64URL, cfg.Encoding)
	assert.Equal(t, domain.ValidateContent, cfg.Validation)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, domain.LogJSON, cfg.LogFormat)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	other := t.TempDir()
	path := writeConfig(t, other, "lock: locked\n")

	cfg, err := newLoader(map[string]string{config.EnvConfig: path}).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.LockLocked, cfg.Lock)
}

func TestLoad_ExplicitConfigPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := newLoader(map[string]string{config.EnvConfig: missing}).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.ErrorContains(t, err, missing)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{name: "malformed yaml", content: "lock: [unterminated", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown lock", content: "lock: exclusive", wantErr: domain.ErrInvalidConfig, wantMsg: `invalid lock "exclusive"`},
		{name: "unknown encoding", content: "encoding: base32", wantErr: domain.ErrInvalidConfig, wantMsg: `invalid encoding "base32"`},
		{name: "unknown validation", content: "validation: sha", wantErr: domain.ErrInvalidConfig, wantMsg: `invalid validation "sha"`},
		{name: "unknown level", content: "log:\n  level: trace", wantErr: domain.ErrInvalidConfig, wantMsg: `invalid log_level "trace"`},
		{name: "unknown format", content: "log:\n  format: xml", wantErr: domain.ErrInvalidConfig, wantMsg: `invalid log_format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := newLoader(nil).Load(dir)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_InvalidFromEnvironment(t *testing.T) {
	_, err := newLoader(map[string]string{config.EnvLock: "exclusive"}).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.ErrorContains(t, err, `invalid lock "exclusive"`)
}

func TestLoad_RelativeRootIsAbsolute(t *testing.T) {
	cfg, err := newLoader(map[string]string{config.EnvRoot: "rel/cache"}).Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Root))
}

func TestLoad_DefaultRootUnavailable(t *testing.T) {
	loader := newLoader(nil)
	loader.DefaultRoot = func() (string, error) { return "", domain.ErrCacheRootUnavailable }

	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheRootUnavailable))
}

func TestNewLoader(t *testing.T) {
	t.Setenv(config.EnvRoot, filepath.Join(t.TempDir(), "root"))
	t.Setenv(config.EnvConfig, "")

	cfg, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, os.Getenv(config.EnvRoot), cfg.Root)
}
