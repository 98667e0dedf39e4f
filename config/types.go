package config

// APIConfig contains Trip Planner API connection settings
type APIConfig struct {
	Key            string `yaml:"key"`
	BaseURL        string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gte=0"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}
