package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/config"
	"github.com/ziadkadry99/portfoliai/internal/contact"
	"github.com/ziadkadry99/portfoliai/internal/db"
	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/gateway"
	"github.com/ziadkadry99/portfoliai/internal/llm"
	"github.com/ziadkadry99/portfoliai/internal/metrics"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/preview"
	"github.com/ziadkadry99/portfoliai/internal/shell"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfoliai init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates the rate-limited, metered LLM provider
// based on config settings.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	provider = llm.NewRateLimitedProvider(provider, cfg.RateLimitRPM)
	return llm.WithUsage(provider, metrics.RecordUsage), nil
}

// loadDocument returns the configured seed document, or the built-in sample.
func loadDocument(cfg *config.Config) (portfolio.Document, error) {
	if cfg.Seed == "" {
		return portfolio.Sample(), nil
	}
	return portfolio.LoadFile(cfg.Seed)
}

// openDatabase opens the activity database. An empty path keeps the log in
// memory for the life of the process.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if cfg.ActivityDB == "" {
		return db.OpenMemory()
	}
	return db.Open(cfg.ActivityDB)
}

// session bundles the components every command builds from the config.
type session struct {
	cfg      *config.Config
	db       *db.DB
	activity *activity.Store
	recorder *activity.Recorder
	inbox    *contact.Inbox
	ctrl     *editor.Controller
	logger   *slog.Logger
}

// openSession loads the document and builds the controller. With
// requireLLM unset, a missing API key disables enrichment instead of failing.
// extra options are applied after the configured ones.
func openSession(actor activity.Actor, requireLLM bool, extra ...editor.Option) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := slog.Default()

	doc, err := loadDocument(cfg)
	if err != nil {
		return nil, err
	}

	database, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening activity database: %w", err)
	}
	store := activity.NewStore(database)
	recorder := activity.NewRecorder(store, actor, logger)

	opts := []editor.Option{
		editor.WithTimeout(cfg.EnrichTimeoutDuration()),
		editor.WithObserver(metrics.Observer{}, recorder),
		editor.WithLogger(logger),
	}
	provider, err := createLLMProviderFromConfig(cfg)
	switch {
	case err == nil:
		opts = append(opts, editor.WithGateway(gateway.New(provider, cfg.Model)))
	case requireLLM:
		database.Close()
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	default:
		logger.Warn("AI drafting disabled", "provider", cfg.Provider, "error", err)
	}

	ctrl, err := editor.New(doc, append(opts, extra...)...)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("loading document: %w", err)
	}

	return &session{
		cfg:      cfg,
		db:       database,
		activity: store,
		recorder: recorder,
		inbox:    contact.NewInbox(database),
		ctrl:     ctrl,
		logger:   logger,
	}, nil
}

// newShell builds the shell with the configured presentation defaults and
// contact delivery.
func (s *session) newShell() (*shell.Shell, error) {
	sender, err := contact.NewSender(s.cfg.Contact.Delivery, s.cfg.Contact.WebhookURL, s.cfg.Contact.SimulatedDelay(), s.inbox)
	if err != nil {
		return nil, err
	}
	settings, err := settingsFromConfig(s.cfg)
	if err != nil {
		return nil, err
	}
	return shell.New(s.ctrl, sender,
		shell.WithSettings(settings),
		shell.WithRecorder(s.recorder),
		shell.WithContactOptions(preview.WithResetDelay(s.cfg.Contact.ResetDelay())),
		shell.WithLogger(s.logger),
	)
}

func settingsFromConfig(cfg *config.Config) (shell.Settings, error) {
	settings := shell.DefaultSettings()
	theme, err := preview.ParseTheme(cfg.Theme)
	if err != nil {
		return settings, err
	}
	mode, err := preview.ParseColorMode(cfg.ColorMode)
	if err != nil {
		return settings, err
	}
	settings.Theme, settings.Mode = theme, mode
	return settings, nil
}

func (s *session) Close() error {
	return s.db.Close()
}
