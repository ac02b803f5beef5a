// Package main is the entry point for the codepane viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/codepane/codepane/internal/config"
	"github.com/codepane/codepane/internal/session"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("codepane %s (%s)\n", version, commit)
		return 0
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "codepane",
	})
	if lvl, err := log.ParseLevel(logLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		var perr *config.ParseError
		if errors.As(err, &perr) {
			logger.Warn("config file has errors, using defaults", "path", perr.Path, "err", perr.Message)
			cfg = config.Default()
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	var content string
	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		content = string(data)
	}

	sess := session.New(
		session.WithContent(content),
		session.WithLineHeight(cfg.LineHeightPx),
		session.WithBufferLines(cfg.BufferLines),
	)
	logger.Debug("session created", "id", sess.ID(), "lines", sess.LineCount())

	viewer, err := newViewer(sess, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer viewer.Close()

	watcher, err := config.Watch(configPath, 200*time.Millisecond, viewer.postConfig)
	if err != nil {
		logger.Warn("config watching disabled", "err", err)
	} else {
		defer watcher.Close()
	}

	if err := viewer.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "codepane.toml"
	}
	return filepath.Join(dir, "codepane", "codepane.toml")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: codepane [options] [file]\n\nOptions:\n")
	flag.PrintDefaults()
}
