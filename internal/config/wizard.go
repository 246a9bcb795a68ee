package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to portfoliai! Let's configure your portfolio builder.")
	fmt.Println()

	// 1. Provider selection.
	providers := []string{"google", "anthropic", "openai", "ollama", "openrouter"}
	providerPrompt := promptui.Select{
		Label: "Select LLM provider for AI drafting",
		Items: providers,
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Quality tier.
	qualityPrompt := promptui.Select{
		Label: "Select quality tier",
		Items: []string{
			"lite   (fast and cheap)",
			"normal (balanced)",
			"max    (highest quality)",
		},
	}
	qualityIdx, _, err := qualityPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("quality selection: %w", err)
	}
	tiers := []QualityTier{QualityLite, QualityNormal, QualityMax}
	quality := tiers[qualityIdx]

	preset := GetPreset(provider, quality)

	// 3. Theme.
	themePrompt := promptui.Select{
		Label: "Default preview theme",
		Items: []string{"modern", "minimal", "creative"},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	// 4. Contact delivery.
	deliveryPrompt := promptui.Select{
		Label: "Contact form delivery",
		Items: []string{"simulated", "inbox", "webhook"},
	}
	_, delivery, err := deliveryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("delivery selection: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Model = preset.Model
	cfg.Quality = quality
	cfg.Theme = theme
	cfg.Contact.Delivery = delivery

	if delivery == "webhook" {
		webhookPrompt := promptui.Prompt{
			Label:    "Webhook URL",
			Validate: validateURL,
		}
		url, err := webhookPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("webhook url: %w", err)
		}
		cfg.Contact.WebhookURL = strings.TrimSpace(url)
	}

	// 5. Listen address.
	addrPrompt := promptui.Prompt{
		Label:   "Listen address for portfoliai serve",
		Default: cfg.Server.Addr,
	}
	addr, err := addrPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("listen address: %w", err)
	}
	cfg.Server.Addr = strings.TrimSpace(addr)

	originsPrompt := promptui.Prompt{
		Label:   "Allowed CORS origins (comma-separated)",
		Default: strings.Join(cfg.Server.Origins(), ","),
	}
	origins, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	cfg.Server.AllowedOrigins = splitAndTrim(origins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Check for API key.
	if envVar := APIKeyEnvVar(provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: set %s in your environment or .env before using the AI actions.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateURL(s string) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must start with http:// or https://")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
