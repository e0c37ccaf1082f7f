package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	DBPath          string `envconfig:"DB_PATH" default:"data/yokedo.db"`
	SecretKey       string `envconfig:"SECRET_KEY" default:"change_me_in_production"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"es"`
	DefaultTimezone string `envconfig:"DEFAULT_TIMEZONE" default:"Europe/Madrid"`
	AccessTokenTTL  int    `envconfig:"ACCESS_TOKEN_TTL_MINUTES" default:"30"`
	RefreshTokenTTL int    `envconfig:"REFRESH_TOKEN_TTL_DAYS" default:"30"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
