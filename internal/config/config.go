package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(func() (*Config, error) { return Load(".env", ".env.local") }),
)

type Config struct {
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// ContentFile points at a YAML catalog that replaces the embedded copy.
	ContentFile string `env:"CONTENT_FILE"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the given .env files, if present, then parses the environment.
// Later files override earlier ones; real environment variables win over both.
func Load(envFiles ...string) (*Config, error) {
	values := map[string]string{}
	for _, file := range envFiles {
		m, err := godotenv.Read(file)
		if err != nil {
			continue
		}
		for k, v := range m {
			values[k] = v
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: merge(values, env.ToMap(os.Environ()))}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address. The port may be given with or without its
// leading colon.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strings.TrimPrefix(c.Port, ":"))
}

func merge(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
