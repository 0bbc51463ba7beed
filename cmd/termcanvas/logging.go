package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/termcanvas/config"
)

const (
	logDir     = "logs"
	maxLogSize = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes slog to the configured file when debug is set and discards otherwise
// Relative file names live under logDir; a file over maxLogSize is rotated with a timestamp suffix
// Returns the open file, nil when logging is off or the file cannot be opened
func setupLogging(debug bool, cfg config.LogConfig) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	path := logPath(cfg)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), time.Now().Format("20060102-150405"), ext)
		os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	slog.Info("termcanvas: logging started", "version", buildVersion(), "pid", os.Getpid())
	return f
}

func logPath(cfg config.LogConfig) string {
	name := cfg.File
	if name == "" {
		name = config.Default().Log.File
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(logDir, name)
}
