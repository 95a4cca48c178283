package log

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Mode selects one of the five fixed logging presets.
type Mode string

const (
	// ModeOriginal filters on the explicit threshold only and uses the
	// compact built-in format without location info.
	ModeOriginal Mode = "original"
	// ModeSimple adds the environment directive filter to ModeOriginal.
	ModeSimple Mode = "simple"
	// ModeGeneral is ModeSimple plus caller file and line.
	ModeGeneral Mode = "general"
	// ModeFull uses the pretty built-in format with process info, span
	// context and stack traces on errors.
	ModeFull Mode = "full"
	// ModeCustom renders events through the custom single-line event
	// formatter, with span context and a truncated caller file name.
	ModeCustom Mode = "custom"
)

var modeRank = map[Mode]struct{}{
	ModeOriginal: {},
	ModeSimple:   {},
	ModeGeneral:  {},
	ModeFull:     {},
	ModeCustom:   {},
}

// Config is the environment-driven part of the pipeline configuration,
// read once at install time.
type Config struct {
	// Format selects the built-in encoder for the compact and pretty modes.
	Format string `env:"LOG_FORMAT" env-default:"console" validate:"oneof=console logfmt json"`
	// Output is the writer target: stdout, stderr, or a file path.
	Output string `env:"LOG_OUTPUT" env-default:"stdout"`
	// Directives is a comma-separated level directive list applied per
	// event target, e.g. "myapp.db=trace,myapp=debug,warn". A bare level
	// acts as the default for unmatched targets. Invalid entries are
	// ignored and the explicit threshold remains in force.
	Directives string `env:"LOG_DIRECTIVES"`
}

var validate = validator.New()

// loadConfig reads the environment configuration, loading a .env file first
// when one is present.
func loadConfig() (Config, error) {
	_ = godotenv.Load() // optional; absence is not an error

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("reading environment: %v", err)}
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, &ConfigError{Reason: fmt.Sprintf("invalid environment configuration: %v", err)}
	}
	return cfg, nil
}

// ConfigError reports an invalid or conflicting pipeline configuration.
// Installation errors are deliberately fatal for callers that use
// MustInstall: running with inconsistent global logging state is worse
// than aborting.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "log: configuration error: " + e.Reason
}
