package configs

import (
	"fmt"
	"github.com/caarlos0/env/v6"
)

type PlatformServiceConfig struct {
	App       App
	Logger    Logger
	DB        DB
	Bot       Bot
	Indexer   Indexer
	Finalizer Finalizer
}

func LoadPlatformServiceConfig() (PlatformServiceConfig, error) {
	var config PlatformServiceConfig

	if err := env.Parse(&config); err != nil {
		return PlatformServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
