package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	charmLog "github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultStoragePath  = "inventory.json"
	defaultLowThreshold = 5
	defaultLogLevel     = "info"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Report  ReportConfig  `toml:"report"`
	Logging LoggingConfig `toml:"logging"`
}

type StorageConfig struct {
	Path string `toml:"path"`
}

type ReportConfig struct {
	LowThreshold int `toml:"low_threshold"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

func Default() Config {
	return Config{
		Storage: StorageConfig{Path: defaultStoragePath},
		Report:  ReportConfig{LowThreshold: defaultLowThreshold},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// Load overlays the TOML file at path onto defaults. A blank path, a
// missing file or an empty file yields defaults unchanged.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return errors.New("storage.path is required")
	}
	if _, err := charmLog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	return nil
}
