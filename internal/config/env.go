package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Env holds all runtime configuration for the gateway and the upstream
// reservation API client.
type Env struct {
	AppAddr        string        `mapstructure:"APP_ADDR"`
	Environment    string        `mapstructure:"ENV"`
	GinMode        string        `mapstructure:"GIN_MODE"`
	UpstreamURL    string        `mapstructure:"UPSTREAM_URL"`
	HTTPTimeout    time.Duration `mapstructure:"HTTP_TIMEOUT"`
	SessionFile    string        `mapstructure:"SESSION_FILE"`
	AllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadEnv reads config.yaml when present and falls back to environment
// variables, with defaults matching the reservation service deployment.
func LoadEnv() Env {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ADDR", ":8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("GIN_MODE", "")
	viper.SetDefault("UPSTREAM_URL", "https://coach-ticket-booking.onrender.com/api/v1")
	viper.SetDefault("HTTP_TIMEOUT", 10*time.Second)
	viper.SetDefault("SESSION_FILE", ".session.json")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("no config file found, using environment variables only")
	}

	var env Env
	if err := viper.Unmarshal(&env); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	env.UpstreamURL = strings.TrimRight(strings.TrimSpace(env.UpstreamURL), "/")
	return env
}

// Origins splits the configured CORS origin list.
func (e Env) Origins() []string {
	out := []string{}
	for _, o := range strings.Split(e.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
