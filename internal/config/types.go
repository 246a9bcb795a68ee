package config

// QualityTier controls the model selection and trade-off between speed/cost and quality.
type QualityTier string

const (
	QualityLite   QualityTier = "lite"
	QualityNormal QualityTier = "normal"
	QualityMax    QualityTier = "max"
)

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic  ProviderType = "anthropic"
	ProviderOpenAI     ProviderType = "openai"
	ProviderGoogle     ProviderType = "google"
	ProviderOllama     ProviderType = "ollama"
	ProviderOpenRouter ProviderType = "openrouter"
)

// Config is the top-level portfoliai configuration, corresponding to .portfoliai.yml.
type Config struct {
	Provider      ProviderType  `yaml:"provider" koanf:"provider"`
	Model         string        `yaml:"model" koanf:"model"`
	Quality       QualityTier   `yaml:"quality" koanf:"quality"`
	RateLimitRPM  int           `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	EnrichTimeout int           `yaml:"enrich_timeout_seconds" koanf:"enrich_timeout_seconds"`
	Seed          string        `yaml:"seed" koanf:"seed"`
	Theme         string        `yaml:"theme" koanf:"theme"`
	ColorMode     string        `yaml:"color_mode" koanf:"color_mode"`
	MaxImageBytes int64         `yaml:"max_image_bytes" koanf:"max_image_bytes"`
	ActivityDB    string        `yaml:"activity_db" koanf:"activity_db"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
	Contact       ContactConfig `yaml:"contact" koanf:"contact"`
	// MaxConcurrency bounds parallel story generation in `portfoliai enrich`.
	MaxConcurrency int `yaml:"max_concurrency" koanf:"max_concurrency"`
}

// ServerConfig holds settings for `portfoliai serve`.
type ServerConfig struct {
	Addr           string   `yaml:"addr" koanf:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// ContactConfig selects how contact form messages are delivered.
type ContactConfig struct {
	Delivery         string `yaml:"delivery" koanf:"delivery"`
	WebhookURL       string `yaml:"webhook_url" koanf:"webhook_url"`
	SimulatedDelayMS int    `yaml:"simulated_delay_ms" koanf:"simulated_delay_ms"`
	ResetDelayMS     int    `yaml:"reset_delay_ms" koanf:"reset_delay_ms"`
}
