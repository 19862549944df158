package config

import (
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"
)

type ServerConfig struct {
	Host                string        `mapstructure:"host"`
	Port                int           `mapstructure:"port"`
	WriteTimeout        time.Duration `mapstructure:"write-timeout"`
	ReadTimeout         time.Duration `mapstructure:"read-timeout"`
	IdleTimeout         time.Duration `mapstructure:"idle-timeout"`
	AllowedOrigins      []string      `mapstructure:"allowed-origins"`
	LogLevel            string        `mapstructure:"log-level"`
	MaxContentLength    int64         `mapstructure:"max-content-length"`
	HealthCheckInterval int           `mapstructure:"health-check-interval"`
}

func (cfg *ServerConfig) Validate() error {
	if net.ParseIP(cfg.Host) == nil {
		return fmt.Errorf("invalid server host: %v", cfg.Host)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Port)
	}

	for name, timeout := range map[string]time.Duration{
		"write": cfg.WriteTimeout,
		"read":  cfg.ReadTimeout,
		"idle":  cfg.IdleTimeout,
	} {
		if timeout < 0 {
			return fmt.Errorf("%s timeout cannot be negative", name)
		}
	}

	if cfg.MaxContentLength <= 0 {
		return fmt.Errorf("max content length must be a positive integer")
	}
	if cfg.HealthCheckInterval <= 0 {
		return fmt.Errorf("health check interval must be a positive integer")
	}

	return nil
}

// An empty log level is allowed, the service falls back to its default.
func (cfg *ServerConfig) ValidateServerLogLevel() error {
	if cfg.LogLevel == "" {
		return nil
	}

	parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if parsedLevel < zerolog.DebugLevel || parsedLevel > zerolog.FatalLevel {
		return fmt.Errorf("only log levels from debug to fatal are supported")
	}
	return nil
}
