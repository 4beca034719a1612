package pathkit

import (
	"os"
	"strconv"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Root directory for scoped temporary directories.
	// Defaults to the platform temp root (os.TempDir).
	TempRoot string `env:"PATHKIT_TEMP_ROOT"`

	// Number of unique-name attempts before temporary directory
	// creation gives up
	TempRetries int `env:"PATHKIT_TEMP_RETRIES,default:16"`

	// Permission bits for created directories, in octal
	DirMode string `env:"PATHKIT_DIR_MODE,default:0755"`

	// Permission bits for created files, in octal
	FileMode string `env:"PATHKIT_FILE_MODE,default:0644"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TempRootDir returns the configured temp root, falling back to the
// platform default
func (c *Config) TempRootDir() string {
	if c.TempRoot != "" {
		return c.TempRoot
	}
	return os.TempDir()
}

// DirFileMode returns the configured directory permission bits
func (c *Config) DirFileMode() (os.FileMode, error) {
	return parseMode(c.DirMode, defaultDirMode)
}

// FileFileMode returns the configured file permission bits
func (c *Config) FileFileMode() (os.FileMode, error) {
	return parseMode(c.FileMode, defaultFileMode)
}

func parseMode(s string, fallback os.FileMode) (os.FileMode, error) {
	if s == "" {
		return fallback, nil
	}
	bits, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(bits), nil
}

// configuredDirMode returns the permission bits used for newly created
// directories, from the environment configuration
func configuredDirMode() (os.FileMode, error) {
	cfg, err := GetConfig()
	if err != nil {
		return 0, err
	}
	return cfg.DirFileMode()
}

// configuredFileMode returns the permission bits used for newly created
// files, from the environment configuration
func configuredFileMode() (os.FileMode, error) {
	cfg, err := GetConfig()
	if err != nil {
		return 0, err
	}
	return cfg.FileFileMode()
}
