package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from an
// optional config.yaml, overridden by Z3Z_* environment variables; a .env
// file is honored so local setups don't have to export anything.
type Config struct {
	Port          int           `mapstructure:"port"`
	DataDir       string        `mapstructure:"data_dir"`
	AssetsDir     string        `mapstructure:"assets_dir"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SecureCookies bool          `mapstructure:"secure_cookies"`
	LogLevel      string        `mapstructure:"log_level"`
}

func Load() (*Config, error) {
	godotenv.Load()

	v := viper.New()
	v.SetDefault("port", 3000)
	v.SetDefault("data_dir", "data")
	v.SetDefault("assets_dir", "public")
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("secure_cookies", false)
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("Z3Z")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
