package config

// File represents the structure of the objcache.yaml configuration file.
type File struct {
	Root       string  `yaml:"root"`
	Lock       string  `yaml:"lock"`
	Encoding   string  `yaml:"encoding"`
	Validation string  `yaml:"validation"`
	Log        LogFile `yaml:"log"`
}

// LogFile represents the log section of the configuration file.
type LogFile struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Environment variables that override values from the configuration file.
const (
	EnvConfig     = "OBJCACHE_CONFIG"
	EnvRoot       = "OBJCACHE_ROOT"
	EnvLock       = "OBJCACHE_LOCK"
	EnvEncoding   = "OBJCACHE_ENCODING"
	EnvValidation = "OBJCACHE_VALIDATION"
	EnvLogLevel   = "OBJCACHE_LOG_LEVEL"
	EnvLogFormat  = "OBJCACHE_LOG_FORMAT"
)
