package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Auth
		Dictionary
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Auth struct {
		SecretKey         string
		AccessTokenExpiry time.Duration
		BcryptCost        int
	}
	Dictionary struct {
		SegmenterDictPath string // empty means the embedded gse dictionary
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", "./cnlearn.db")
	v.SetDefault("segmenter_dict_path", "")

	// Auth defaults
	v.SetDefault("secret_key", "")
	v.SetDefault("access_token_expiry", "8h")
	v.SetDefault("bcrypt_cost", 12)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			SecretKey:         v.GetString("SECRET_KEY"),
			AccessTokenExpiry: v.GetDuration("ACCESS_TOKEN_EXPIRY"),
			BcryptCost:        v.GetInt("BCRYPT_COST"),
		},
		Dictionary: Dictionary{
			SegmenterDictPath: v.GetString("SEGMENTER_DICT_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
