package config

// SubsidyConfig представляет конфигурацию портала открытых данных.
type SubsidyConfig struct {
	BaseURL    string `yaml:"base_url" env:"CLIENT_SUBSIDY_BASE_URL" env-default:"https://api.odcloud.kr/api/gov24/v3"`
	ServiceKey string `yaml:"service_key" env:"CLIENT_SUBSIDY_SERVICE_KEY" env-default:""`
}
