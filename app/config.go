package main

import "github.com/spf13/viper"

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	Mongo struct {
		User     string `mapstructure:"MONGO_USER"`
		Password string `mapstructure:"MONGO_PASSWORD"`
		Host     string `mapstructure:"MONGO_HOST"`
	}

	JWT struct {
		AccessSecret string `mapstructure:"JWT_ACCESS_SECRET"`
	}

	CORS struct {
		// space-separated list of allowed origins
		TrustedOrigins string `mapstructure:"CORS_TRUSTED_ORIGINS"`
	}

	Limiter struct {
		Enabled bool    `mapstructure:"LIMITER_ENABLED"`
		RPS     float64 `mapstructure:"LIMITER_RPS"`
		Burst   int     `mapstructure:"LIMITER_BURST"`
	}
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)

	viper.SetDefault("PORT", ":5000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LIMITER_ENABLED", true)
	viper.SetDefault("LIMITER_RPS", 25)
	viper.SetDefault("LIMITER_BURST", 50)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) production() bool {
	return c.Environment == "production"
}
