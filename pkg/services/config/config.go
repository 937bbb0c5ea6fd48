package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Mongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type Report struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	Mongo  Mongo  `mapstructure:"mongo"`
	Report Report `mapstructure:"report"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("mongo.database", "pocketledger")
	v.SetDefault("report.cache_ttl", 2*time.Minute)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo.uri is required")
	}
	return &cfg, nil
}
