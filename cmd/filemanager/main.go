// Package main provides the CLI entry point for filemanager.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/filemanager/pkg/adapters/aferofs"
	"github.com/user/filemanager/pkg/adapters/lineconsole"
	"github.com/user/filemanager/pkg/adapters/logger"
	"github.com/user/filemanager/pkg/adapters/osfilesystem"
	"github.com/user/filemanager/pkg/adapters/zaplogger"
	"github.com/user/filemanager/pkg/config"
	"github.com/user/filemanager/pkg/dispatcher"
	"github.com/user/filemanager/pkg/operations"
	"github.com/user/filemanager/pkg/ports"
	"github.com/user/filemanager/pkg/summarizer"
)

var version = "dev"

// shutdownGrace bounds how long an interrupted session waits for the
// running operation before leaving.
const shutdownGrace = 2 * time.Second

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "filemanager",
		Usage:           l10n.T("Interactive console file manager"),
		Description:     l10n.T("filemanager lists, copies, moves, deletes and searches files through a numbered menu."),
		Version:         version,
		HideHelpCommand: true,
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    l10n.T("Configuration file (.yaml, .yml or .toml)"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "root",
				Usage:    l10n.T("Resolve every path inside this directory"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "summary",
				Usage:    l10n.T("Write a Markdown session report to this file on exit"),
				Category: l10n.T("Configuration"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"q"},
				Usage:    l10n.T("Suppress all log output on stderr"),
				Category: l10n.T("Logging"),
			},
			&cli.StringFlag{
				Name:     "log-file",
				Usage:    l10n.T("Also write JSON logs to this file"),
				Category: l10n.T("Logging"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return fmt.Errorf("unexpected argument %q", c.Args().First())
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return run(c.Context, cfg, c.App.Reader, c.App.Writer, c.App.ErrWriter)
		},
	}
}

// loadConfig applies defaults, the config file, the environment and then
// explicitly set flags, in that order.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("quiet") {
		cfg.Quiet = c.Bool("quiet")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("root") {
		cfg.Root = c.String("root")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}

	return cfg, cfg.Validate()
}

// run drives one interactive session. Leaving through the menu, running out
// of input and being interrupted all count as a normal exit.
func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	sessionID := uuid.NewString()
	startedAt := time.Now()

	log, closeLog, err := buildLogger(cfg, sessionID, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	console := lineconsole.New(stdin, stdout)
	d := dispatcher.New(console, operations.Table(buildFileSystem(cfg), log), log)

	var recorder *summarizer.Recorder
	if cfg.Summary != "" {
		recorder = summarizer.NewRecorder()
		d.WithRecorder(recorder)
	}

	log.Info("Session %s started", sessionID)

	// A pending console read cannot be interrupted, so the loop runs on its
	// own goroutine and an interrupt only waits for it briefly.
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		select {
		case err = <-done:
		case <-time.After(shutdownGrace):
			err = ctx.Err()
		}
	}

	log.Info("Session %s ended", sessionID)

	if recorder != nil {
		summary := summarizer.NewBuilder().
			WithSession(sessionID, startedAt).
			WithEnd(time.Now()).
			WithOperations(recorder.Operations()).
			Build()
		writer := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		))
		if werr := writer.Write(cfg.Summary, summary); werr != nil {
			log.Error("Failed to write summary: %s", werr)
		} else {
			log.Info("Summary saved to %s", cfg.Summary)
		}
	}

	switch {
	case errors.Is(err, ports.ErrInputClosed):
		log.Info("Input closed, leaving file manager")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

// buildLogger returns the console logger, teed with a zap file logger when
// a log file is configured, and a function that flushes it.
func buildLogger(cfg config.Config, sessionID string, stderr io.Writer) (ports.Logger, func(), error) {
	var console ports.Logger
	switch {
	case cfg.Level() == ports.LevelQuiet:
		console = logger.NewNoop()
	case stderr == io.Writer(os.Stderr):
		console = logger.NewConsole(cfg.Level())
	default:
		console = logger.NewConsoleWriter(cfg.Level(), stderr)
	}

	if cfg.LogFile == "" {
		return console, func() {}, nil
	}

	fileLog, err := zaplogger.New(zaplogger.Config{
		Level:       cfg.LogLevel,
		OutputPaths: []string{cfg.LogFile},
		SessionID:   sessionID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger.NewTee(console, fileLog), func() { _ = fileLog.Sync() }, nil
}

// buildFileSystem returns the host filesystem, or a jail below cfg.Root.
func buildFileSystem(cfg config.Config) ports.FileSystem {
	if cfg.Root != "" {
		return aferofs.NewJailed(cfg.Root)
	}
	return osfilesystem.New()
}
