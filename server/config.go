package server

import (
	"github.com/joeshaw/envdecode"
)

// Config holds the server's runtime settings, read from the
// environment. Defaults match the reference deployment.
type Config struct {
	Port          int `env:"PORT,default=12345"`
	StartingMoney int `env:"STARTING_MONEY,default=1000"`
}

// ConfigFromEnv decodes a Config from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
