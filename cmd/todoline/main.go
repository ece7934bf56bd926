package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"todoline/internal/config"
	"todoline/internal/storage"
	"todoline/internal/ui"
)

func main() {
	cfg, err := config.LoadOrCreate(config.DefaultConfigFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open task store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := ui.Run(store, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to a file: the TUI owns the terminal, so nothing may be
// written to stdout while the program runs. An empty path disables
// logging.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	return logger, func() { f.Close() }, nil
}
