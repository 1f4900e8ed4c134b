// Package config provides the configuration loader for objcache.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using an optional YAML file and the environment.
type Loader struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string
	// DefaultRoot resolves the cache root when none is configured.
	// Defaults to domain.DefaultCacheRoot.
	DefaultRoot func() (string, error)
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{
		Getenv:      os.Getenv,
		DefaultRoot: domain.DefaultCacheRoot,
	}
}

// Load resolves the configuration for the given working directory.
// The file named by OBJCACHE_CONFIG is used when set, otherwise objcache.yaml in cwd.
// A missing default file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path, explicit := getenv(EnvConfig), true
	if path == "" {
		path, explicit = filepath.Join(cwd, domain.ConfigFileName), false
	}

	file, err := readFile(path, explicit)
	if err != nil {
		return nil, err
	}

	override(&file.Root, getenv(EnvRoot))
	override(&file.Lock, getenv(EnvLock))
	override(&file.Encoding, getenv(EnvEncoding))
	override(&file.Validation, getenv(EnvValidation))
	override(&file.Log.Level, getenv(EnvLogLevel))
	override(&file.Log.Format, getenv(EnvLogFormat))

	cfg, err := resolve(file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if cfg.Root == "" {
		defaultRoot := l.DefaultRoot
		if defaultRoot == nil {
			defaultRoot = domain.DefaultCacheRoot
		}
		if cfg.Root, err = defaultRoot(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func readFile(path string, explicit bool) (File, error) {
	var file File

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	return file, nil
}

func resolve(file File) (*domain.Config, error) {
	lock, err := domain.ParseLockMode(file.Lock)
	if err != nil {
		return nil, err
	}
	enc, err := domain.ParseEncoding(file.Encoding)
	if err != nil {
		return nil, err
	}
	validation, err := domain.ParseValidation(file.Validation)
	if err != nil {
		return nil, err
	}
	format, err := domain.ParseLogFormat(file.Log.Format)
	if err != nil {
		return nil, err
	}
	level, err := parseLevelName(file.Log.Level)
	if err != nil {
		return nil, err
	}

	root := file.Root
	if root != "" {
		if root, err = filepath.Abs(root); err != nil {
			return nil, errors.Join(domain.InvalidValue("root", file.Root), err)
		}
	}

	return &domain.Config{
		Root:       root,
		Lock:       lock,
		Encoding:   enc,
		Validation: validation,
		LogLevel:   level,
		LogFormat:  format,
	}, nil
}

func parseLevelName(name string) (string, error) {
	switch level := strings.ToLower(strings.TrimSpace(name)); level {
	case "":
		return "info", nil
	case "debug", "info", "warn", "warning", "error":
		return level, nil
	default:
		return "", domain.InvalidValue("log_level", name)
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
