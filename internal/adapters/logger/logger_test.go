package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/objcache/internal/adapters/logger"
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	t.Run("simple message", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Info("some message")

		g := goldie.New(t)
		g.Assert(t, "info_basic", buf.Bytes())
	})

	t.Run("with attributes", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Info("context established", "dir", "/cache/ctx_app", "target", "device-x")

		g := goldie.New(t)
		g.Assert(t, "info_attrs", buf.Bytes())
	})
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	t.Run("hidden at info level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("probing header", "path", "/inc/a.h")
		assert.Empty(t, buf.String())
	})

	t.Run("shown at debug level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		require.NoError(t, lg.SetLevel("debug"))
		lg.Debug("probing header", "path", "/inc/a.h")

		g := goldie.New(t)
		g.Assert(t, "debug_basic", buf.Bytes())
	})
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "stdlib chain",
			err: fmt.Errorf("failed to initialize service: %w",
				fmt.Errorf("failed to connect to database: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "joined sentinel",
			err: errors.Join(domain.ErrStorageFailure, zerr.With(
				zerr.Wrap(errors.Join(domain.ErrPathStatFailed, errors.New("stat main.o: no such file")),
					"failed to stat dependency"),
				"source", "main.c")),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.Wrap(errors.New("disk full"), "failed to store object"))

	out := buf.String()
	assert.Contains(t, out, "Error: failed to store object")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "disk full")
}

func TestLogger_Error_JoinedDropsRepeats(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.Join(domain.ErrDirectoryCreationFailed,
		errors.Join(domain.ErrDirectoryCreationFailed, zerr.With(errors.New("read-only file system"), "path", "/cache"))))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, domain.ErrDirectoryCreationFailed.Error()), out)
	assert.Contains(t, out, "→ read-only file system")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("stored object", "source", "/src/main.c")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "stored object", record["msg"])
	assert.Equal(t, "/src/main.c", record["source"])

	buf.Reset()
	lg.Error(errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_Configure(t *testing.T) {
	lg, buf := newTestLogger(t)

	require.NoError(t, lg.Configure(&domain.Config{LogLevel: "warn", LogFormat: domain.LogPretty}))
	lg.Info("hidden")
	lg.Warn("shown")
	assert.Equal(t, "! shown\n", buf.String())

	err := lg.Configure(&domain.Config{LogLevel: "verbose"})
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"", "debug", "info", "warn", "warning", "error", "DEBUG"} {
		_, err := logger.ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := logger.ParseLevel("trace")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.ErrorContains(t, err, `invalid log_level "trace"`)
}
