package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/typepreview/internal/config"
	"github.com/alexisbeaulieu97/typepreview/internal/fonts"
	"github.com/alexisbeaulieu97/typepreview/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Catalog *fonts.Catalog

	closers []io.Closer
}

// Close releases resources such as the log file.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// newAppContext loads configuration and builds the logger. When the
// interface owns the terminal, logs go to the configured file or nowhere;
// otherwise they go to stderr.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg, Catalog: fonts.NewCatalog()}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	logFile := cfg.Log.File
	if flags.logFile != "" {
		logFile = flags.logFile
	}

	var writer io.Writer = stderr
	human := cfg.Log.Human || !interactive
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, f)
		writer = f
		human = cfg.Log.Human
	} else if interactive {
		app.Logger = logger.Discard()
		return app, nil
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: writer, Component: "cli"})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	app.Logger = log
	return app, nil
}
