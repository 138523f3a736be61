// Package config содержит конфигурацию клиента платформы.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "startuphub/pkg/config"
	"startuphub/pkg/logger"
)

// Константы сообщений конфигурации клиента.
const (
	LogConfigLoaded     = "client configuration loaded"
	ErrFailedLoadConfig = "failed to load client configuration"
)

const serviceName = "client"

// Config представляет полную конфигурацию клиента.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Subsidy SubsidyConfig `yaml:"subsidy"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load загружает конфигурацию из переменных окружения и, при наличии,
// из env-файла.
func Load(ctx context.Context, envPath string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, envPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("state_path", cfg.Storage.StatePath),
		zap.String("token_path", cfg.Storage.TokenPath),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}
