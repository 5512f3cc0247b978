package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultLocalPath is where Load looks for a project-level config file when
// the caller does not name one.
const DefaultLocalPath = ".pipefetch/config.yml"

// Configuration represents the pipefetch CLI configuration.
type Configuration struct {
	Backend      string `koanf:"backend" validate:"required,oneof=auto wget curl"`
	Auth         string `koanf:"auth"`
	UserAgent    string `koanf:"user_agent"`
	Verbosity    int    `koanf:"verbosity" validate:"min=0,max=3"`
	Timeout      int    `koanf:"timeout" validate:"omitempty,min=1,max=604800"` // seconds; 0 disables the watchdog
	ShowProgress bool   `koanf:"show_progress"`                                 // spinner while fetching to a file on a TTY
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > .env > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists. YAML is what `config init --global`
	// writes; config.json stays recognized for setups that predate it.
	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"config.yml", "config.json"} {
			globalPath := filepath.Join(homeDir, ".pipefetch", name)
			if _, err := os.Stat(globalPath); err != nil {
				continue
			}
			if err := k.Load(file.Provider(globalPath), parserFor(globalPath)); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
			break
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), parserFor(localConfigPath)); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Pull .env into the process environment so PIPEFETCH_ variables declared
	// there reach the env provider below. Existing variables win.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("PIPEFETCH_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// parserFor picks the file parser by extension. JSON is the default so the
// global config and extensionless paths keep loading the way they always have.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser()
	default:
		return json.Parser()
	}
}

// envTransform converts environment variable names to config keys.
// Example: PIPEFETCH_USER_AGENT -> user_agent
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PIPEFETCH_"))
}
