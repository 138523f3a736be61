package config

// StorageConfig представляет конфигурацию файловых хранилищ сессии.
type StorageConfig struct {
	StatePath string `yaml:"state_path" env:"CLIENT_STATE_PATH" env-default:".startuphub/state.json"`
	TokenPath string `yaml:"token_path" env:"CLIENT_TOKEN_PATH" env-default:".startuphub/tokens.json"`
}
