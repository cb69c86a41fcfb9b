package config

import (
	"ctchen222/tictactoe/internal/validator"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	HTTPPort    string        `yaml:"http-port" env:"HTTP_PORT" env-default:"8080" validate:"required,numeric"`
	Repeats     int           `yaml:"repeats" env:"REPEATS" env-default:"1" validate:"min=1"`
	Parallelism int           `yaml:"parallelism" env:"PARALLELISM" env-default:"1" validate:"min=1"`
	PrintGame   bool          `yaml:"print-game" env:"PRINT_GAME" env-default:"true"`
	MoveDelay   time.Duration `yaml:"move-delay" env:"MOVE_DELAY" env-default:"800ms"`
	Players     Players       `yaml:"players"`
	Otel        Otel          `yaml:"otel"`
}

type Players struct {
	X string `yaml:"x" env:"PLAYER_X" env-default:"hard" validate:"oneof=easy medium hard human"`
	O string `yaml:"o" env:"PLAYER_O" env-default:"human" validate:"oneof=easy medium hard human"`
}

type Otel struct {
	// Endpoint of the OTLP gRPC collector. Traces go to stdout when empty.
	Endpoint    string `yaml:"endpoint" env:"OTEL_ENDPOINT"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. An empty path reads only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// HTTPAddr is the listen address of the move oracle.
func (c *Config) HTTPAddr() string {
	return ":" + c.HTTPPort
}
