package config

import "time"

// JWTConfig представляет конфигурацию токенов.
type JWTConfig struct {
	SecretKey       string        `yaml:"secret_key" env:"MOCKAPI_JWT_SECRET_KEY" env-default:"dev-secret-key"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"MOCKAPI_JWT_ACCESS_TOKEN_TTL" env-default:"30m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"MOCKAPI_JWT_REFRESH_TOKEN_TTL" env-default:"168h"`
}
