package config

import "time"

// APIConfig представляет конфигурацию подключения к платформе.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"CLIENT_API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"CLIENT_API_TIMEOUT" env-default:"15s"`
}
