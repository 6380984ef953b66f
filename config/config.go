package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
}

type ServerConfig struct {
	Port int
}

type MongoDBConfig struct {
	URI      string
	Database string
}

// Load reads configuration from an optional YAML file with environment
// overrides (APP_SERVER_PORT, APP_MONGODB_URI, APP_MONGODB_DATABASE).
// Defaults let the binary run against a local MongoDB with no setup.
func Load(path string) (*Config, error) {

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "articles_data")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
