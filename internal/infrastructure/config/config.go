package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr    string `mapstructure:"HTTP_ADDR"`
	GRPCAddr    string `mapstructure:"GRPC_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	QRSize      int    `mapstructure:"QR_SIZE"`
}

// Load reads the environment, falling back to a .env file in dir when one
// exists. An empty DatabaseURL selects the in-memory payload store.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("GRPC_ADDR", ":50051")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("QR_SIZE", 256)

	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.QRSize <= 0 {
		return nil, errors.New("QR_SIZE must be positive")
	}
	return &cfg, nil
}
