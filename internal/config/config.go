package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	KPI    KPIConfig
}

type ServerConfig struct {
	Port int
}

type LogConfig struct {
	Level string
}

type KPIConfig struct {
	SnapshotInterval time.Duration
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("KPI_SNAPSHOT_INTERVAL", "1h")

	snapshotInterval, err := time.ParseDuration(viper.GetString("KPI_SNAPSHOT_INTERVAL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		KPI: KPIConfig{
			SnapshotInterval: snapshotInterval,
		},
	}

	return cfg, nil
}
