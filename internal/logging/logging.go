package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"playground/internal/config"
)

const (
	filePrefix = "playground-"
	fileSuffix = ".log"
	fileStamp  = "2006-01-02T15-04-05"
)

// New builds the process logger: JSON to stdout, mirrored to a rotated
// file under cfg.LogDir when one is set. Debug level is enabled outside
// production. The returned close func releases the log file.
func New(cfg *config.Config, stdout io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelDebug
	if cfg.IsProd() {
		level = slog.LevelInfo
	}

	out, closeFn := stdout, func() error { return nil }
	if cfg.LogDir != "" {
		f, err := openLogFile(cfg.LogDir, cfg.LogMaxFiles, time.Now())
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = io.MultiWriter(stdout, f), f.Close
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// openLogFile starts a fresh file named after now and prunes the oldest
// files so at most keep remain.
func openLogFile(dir string, keep int, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, filePrefix+now.Format(fileStamp)+fileSuffix))
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	if err := prune(dir, keep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to prune old logs: %v\n", err)
	}
	return f, nil
}

func prune(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileSuffix) {
			names = append(names, name)
		}
	}
	if len(names) <= keep {
		return nil
	}

	// Stamps sort lexically in time order
	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}
