package config

import "time"

// QualityPreset describes the model to use for a given quality tier.
type QualityPreset struct {
	Model string
}

// qualityPresets maps each provider+quality combination to its model choice.
var qualityPresets = map[ProviderType]map[QualityTier]QualityPreset{
	ProviderAnthropic: {
		QualityLite:   {Model: "claude-haiku-4-5-20251001"},
		QualityNormal: {Model: "claude-sonnet-4-5-20250929"},
		QualityMax:    {Model: "claude-opus-4-6"},
	},
	ProviderOpenAI: {
		QualityLite:   {Model: "gpt-4o-mini"},
		QualityNormal: {Model: "gpt-4o"},
		QualityMax:    {Model: "gpt-4"},
	},
	ProviderGoogle: {
		QualityLite:   {Model: "gemini-3-flash-preview"},
		QualityNormal: {Model: "gemini-3-flash-preview"},
		QualityMax:    {Model: "gemini-3-pro-preview"},
	},
	ProviderOllama: {
		QualityLite:   {Model: "llama3"},
		QualityNormal: {Model: "llama3"},
		QualityMax:    {Model: "llama3:70b"},
	},
	ProviderOpenRouter: {
		QualityLite:   {Model: "minimax/minimax-m2.5"},
		QualityNormal: {Model: "minimax/minimax-m2.5"},
		QualityMax:    {Model: "minimax/minimax-m2.5"},
	},
}

// DefaultMaxImageBytes caps uploaded images, which are kept inline as data URLs.
const DefaultMaxImageBytes = 2 << 20

// DefaultAllowedOrigins is used when server.allowed_origins is empty.
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGoogle,
		Model:          "gemini-3-flash-preview",
		Quality:        QualityNormal,
		RateLimitRPM:   0,
		EnrichTimeout:  60,
		Theme:          "modern",
		ColorMode:      "light",
		MaxImageBytes:  DefaultMaxImageBytes,
		MaxConcurrency: 3,
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
		Contact: ContactConfig{
			Delivery:         "simulated",
			SimulatedDelayMS: 1500,
			ResetDelayMS:     5000,
		},
	}
}

// GetPreset returns the quality preset for the given provider and tier.
// Returns the Normal Google preset if the combination is not found.
func GetPreset(provider ProviderType, tier QualityTier) QualityPreset {
	if tiers, ok := qualityPresets[provider]; ok {
		if preset, ok := tiers[tier]; ok {
			return preset
		}
	}
	return qualityPresets[ProviderGoogle][QualityNormal]
}

// EnrichTimeoutDuration converts enrich_timeout_seconds. Zero disables the bound.
func (c *Config) EnrichTimeoutDuration() time.Duration {
	return time.Duration(c.EnrichTimeout) * time.Second
}

// Origins returns the configured CORS origins, or DefaultAllowedOrigins.
func (s ServerConfig) Origins() []string {
	if len(s.AllowedOrigins) == 0 {
		return DefaultAllowedOrigins
	}
	return s.AllowedOrigins
}

// SimulatedDelay converts contact.simulated_delay_ms.
func (c ContactConfig) SimulatedDelay() time.Duration {
	return time.Duration(c.SimulatedDelayMS) * time.Millisecond
}

// ResetDelay converts contact.reset_delay_ms.
func (c ContactConfig) ResetDelay() time.Duration {
	return time.Duration(c.ResetDelayMS) * time.Millisecond
}
