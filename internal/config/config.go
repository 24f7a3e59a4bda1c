package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. PALETTEGEN_COLUMNS.
const EnvPrefix = "PALETTEGEN"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	Columns  int            `mapstructure:"columns" validate:"min=1"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Unicode       bool `mapstructure:"unicode"`
	AltScreen     bool `mapstructure:"alt_screen"`
	StatusSeconds int  `mapstructure:"status_seconds" validate:"min=1,max=60"`
}

// LogConfig controls the structured log sink. An empty File discards logs.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	File  string `mapstructure:"file"`
	Human bool   `mapstructure:"human"`
}

// GenerateConfig holds defaults for the non-interactive generate command.
type GenerateConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml toml"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("columns", 5)
	v.SetDefault("ui.unicode", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.status_seconds", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.human", false)
	v.SetDefault("generate.format", "text")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. An explicit path must exist;
// otherwise $XDG_CONFIG_HOME/palettegen/config.{toml,yaml,...} is used when
// present. Env var overrides use prefix PALETTEGEN_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else if dir := DefaultDir(); dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field bounds and enumerations.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidConfig, fieldPath(fe.Namespace()), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

// fieldPath turns "Config.UI.StatusSeconds" into "UI.StatusSeconds".
func fieldPath(ns string) string {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return ns
	}
	return rest
}

// DefaultDir returns the directory searched for config.* when no explicit
// path is given.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "palettegen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "palettegen")
}
