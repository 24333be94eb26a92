package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/zenlead/studio/core/logger"
)

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int
}

func LoadServerConfig() ServerConfig {
	viper.AutomaticEnv() // enable overwrite envs

	// default
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.shutdown_timeout", 10)

	if err := viper.ReadInConfig(); err != nil {
		logger.Debug("no config file found, use default configuration: %v", err)
	}

	return ServerConfig{
		Host:            viper.GetString("server.host"),
		Port:            viper.GetInt("server.port"),
		ShutdownTimeout: viper.GetInt("server.shutdown_timeout"),
	}
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
