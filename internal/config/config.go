package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/brandonbloom/rn/internal/selector"
)

const (
	envRoot          = "RN_ROOT"
	envColor         = "RN_COLOR"
	envMaxReadFaults = "RN_MAX_READ_FAULTS"
)

// Config captures rn's runtime settings. They come from defaults, the
// environment and command-line flags; rn keeps no settings file.
type Config struct {
	// Root is the directory whose child checkouts are offered.
	Root string
	// Color is auto, always, or never.
	Color string
	// MaxReadFaults bounds consecutive input read failures while selecting.
	MaxReadFaults int
}

var (
	// ErrMissingRoot indicates no root directory could be determined.
	ErrMissingRoot = errors.New("repository root must be set (use --root or RN_ROOT)")
	// ErrInvalidColor indicates the color mode is not recognized.
	ErrInvalidColor = errors.New("color must be auto, always, or never")
)

// DefaultRoot returns ~/Documents/GitHub for the given home directory.
func DefaultRoot(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, "Documents", "GitHub")
}

// Default returns the baseline configuration for a home directory.
func Default(home string) Config {
	cfg := Config{Root: DefaultRoot(home)}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	} else {
		c.Color = strings.ToLower(c.Color)
	}
	if c.MaxReadFaults <= 0 {
		c.MaxReadFaults = selector.DefaultMaxReadFaults
	}
	if c.Root != "" {
		c.Root = filepath.Clean(expandHome(c.Root))
	}
}

// Validate ensures the configuration can guide rn's behavior.
func (c Config) Validate() error {
	if c.Root == "" {
		return ErrMissingRoot
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return ErrInvalidColor
	}
	return nil
}

// Load resolves configuration from the process environment.
func Load() (Config, error) {
	home, _ := os.UserHomeDir()
	return FromEnv(os.Getenv, home)
}

// FromEnv resolves configuration using getenv, falling back to defaults
// derived from home. The result is validated by Override once flags are
// known.
func FromEnv(getenv func(string) string, home string) (Config, error) {
	cfg := Default(home)
	if root := getenv(envRoot); root != "" {
		cfg.Root = root
	}
	if mode := getenv(envColor); mode != "" {
		cfg.Color = mode
	}
	if raw := getenv(envMaxReadFaults); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", envMaxReadFaults, raw)
		}
		cfg.MaxReadFaults = n
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Override applies command-line values on top of c and validates the
// result. Empty values are ignored.
func (c Config) Override(root, color string) (Config, error) {
	if root != "" {
		c.Root = root
	}
	if color != "" {
		c.Color = color
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
