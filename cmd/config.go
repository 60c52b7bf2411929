package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// CartTTL is how long a cart may stay untouched before the janitor
	// removes it.
	CartTTL time.Duration

	// GatewaySuccessRate and GatewayDelay tune the simulated payment
	// provider.
	GatewaySuccessRate float64
	GatewayDelay       time.Duration
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSslMode)
}
