package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress    = ":8000"
	defaultTokenDuration  = 30 * time.Minute
	defaultRequestTimeout = 30 * time.Second
	defaultLogLevel       = "debug"
	defaultVersion        = "1.0.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         defaultLogLevel,
			Version:          defaultVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
