package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	DatabaseURL string
}

type JWTConfig struct {
	Secret    string
	AccessTTL time.Duration
}

type UploadConfig struct {
	BaseDir    string
	StaticBase string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DATABASE_URL", "kitchencare.db")
	viper.SetDefault("JWT_ACCESS_TTL", "24h")
	viper.SetDefault("UPLOAD_BASE_DIR", "./uploads")
	viper.SetDefault("UPLOAD_STATIC_BASE", "/static/uploads")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Env:         viper.GetString("SERVER_ENV"),
			DatabaseURL: viper.GetString("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret:    viper.GetString("JWT_SECRET"),
			AccessTTL: viper.GetDuration("JWT_ACCESS_TTL"),
		},
		Upload: UploadConfig{
			BaseDir:    viper.GetString("UPLOAD_BASE_DIR"),
			StaticBase: viper.GetString("UPLOAD_STATIC_BASE"),
		},
	}
}
