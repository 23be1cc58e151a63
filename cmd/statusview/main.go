// Command statusview is a terminal feed reader demonstrating the status
// container: every load outcome is rendered by one of its status views.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/statusview/internal/application/usecase"
	"github.com/tesso57/statusview/internal/infrastructure/cache"
	"github.com/tesso57/statusview/internal/infrastructure/config"
	"github.com/tesso57/statusview/internal/infrastructure/feed"
	"github.com/tesso57/statusview/internal/infrastructure/logging"
	"github.com/tesso57/statusview/internal/presentation/tui"
	"github.com/tesso57/statusview/internal/presentation/tui/template"
	"go.uber.org/zap"
)

type cli struct {
	Config    string `help:"Config file path." type:"path"`
	Feed      string `help:"Feed URL overriding the configured one."`
	Templates string `help:"Directory of extra layout templates." type:"path"`
	LogFile   string `help:"Log file path."`
	LogLevel  string `help:"Log level (debug/info/warn/error/off)."`
	Debug     bool   `help:"Write human readable development logs."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("statusview"),
		kong.Description("Browse a feed through a multi-status view container."),
		kong.UsageOnError(),
	)

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "statusview: %v\n", err)
		os.Exit(1)
	}
}

func run(args cli) error {
	store, err := config.Load(args.Config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg := store.Settings
	if args.Feed != "" {
		cfg.Feed = args.Feed
	}
	if args.Templates != "" {
		cfg.TemplatesDir = args.Templates
	}
	if args.LogFile != "" {
		cfg.Log.File = args.LogFile
	}
	if args.LogLevel != "" {
		cfg.Log.Level = args.LogLevel
	}
	if cfg.Log.File == "" {
		cfg.Log.File = config.DefaultLogFile()
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File, Development: args.Debug})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("config", store.Path()), zap.String("feed", cfg.Feed))

	registry, err := template.NewRegistry()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	if cfg.TemplatesDir != "" {
		n, err := registry.LoadDir(cfg.TemplatesDir)
		if err != nil {
			return fmt.Errorf("templates: %w", err)
		}
		logger.Info("templates loaded", zap.String("dir", cfg.TemplatesDir), zap.Int("count", n))
	}
	factory := template.NewFactory(registry, template.WithLogger(logger.Named("template")))

	var feedCache usecase.FeedCache
	if cfg.CacheFile != "" {
		db, err := cache.Open(cfg.CacheFile)
		if err != nil {
			logger.Warn("feed cache disabled", zap.String("path", cfg.CacheFile), zap.Error(err))
		} else {
			defer func() { _ = db.Close() }()
			feedCache = db
		}
	}
	loader := usecase.NewLoadService(feed.NewFetcher(), feedCache, cfg.Fetch.Timeout())

	model, err := tui.NewModel(cfg, loader, factory, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}
