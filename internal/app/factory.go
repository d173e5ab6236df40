package app

import (
	"github.com/footprint-tools/cmdcon/internal/config"
	"github.com/footprint-tools/cmdcon/internal/domain"
	"github.com/footprint-tools/cmdcon/internal/history"
	"github.com/footprint-tools/cmdcon/internal/log"
	"github.com/footprint-tools/cmdcon/internal/paths"
	"github.com/footprint-tools/cmdcon/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// History options. An empty HistoryPath keeps history in memory.
	HistoryPath  string
	HistoryLimit int

	// Session options
	HintLimit int
	Demo      bool
}

// DefaultOptions returns the options described by the config file.
func DefaultOptions() Options {
	provider := config.NewProvider()
	styleConfig, _ := config.GetAll()
	historyPath, _ := config.Get("history_path")
	logLevel, _ := config.Get("log_level")

	return Options{
		LogEnabled:   config.Bool(provider, "enable_log", true),
		LogLevel:     log.ParseLevel(logLevel),
		LogPath:      paths.LogFilePath(),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		HistoryPath:  historyPath,
		HistoryLimit: config.Int(provider, "history_limit", history.DefaultLimit),
		HintLimit:    config.Int(provider, "hint_limit", 0),
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// Fall back to NopLogger on error
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			logger = l
		}
	}

	var store domain.HistoryStore
	if opts.HistoryPath == "" {
		store = history.NewMemory(opts.HistoryLimit)
	} else {
		s, err := history.Open(opts.HistoryPath, opts.HistoryLimit, logger)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		store = s
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Config:  config.NewProvider(),
		Logger:  logger,
		History: store,
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses in-memory config and history, NopLogger, and no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config:  config.NewMapProvider(nil),
		Logger:  log.NopLogger{},
		History: history.NewMemory(history.DefaultLimit),
		Styler:  style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.History != nil {
		_ = app.History.Close()
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
