package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yildizm/TaylorSum/internal/logger"
	"github.com/yildizm/TaylorSum/internal/session"
)

func newWatchCommand() *cobra.Command {
	var (
		flags      seriesFlags
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run batch whenever an angle file changes",
		Long: `Evaluate an angle file like "batch" and evaluate it again every time the
file is written. Editors that save by replacing the file are handled by
watching the containing directory. Press Ctrl+C to stop watching.`,
		Example: `  taylorsum watch angles.txt
  taylorsum watch -o json --output-file results.json angles.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if err := validateWatchFilePath(filename); err != nil {
				return fmt.Errorf("invalid file path: %w", err)
			}

			base, err := flags.newSession(cmd, "")
			if err != nil {
				return err
			}
			defaults := sessionDefaults(base)
			log := newLogger("watch").With(logger.F("file", filename))

			rerun := func() error {
				return runBatchFile(cmd, filename, defaults, outputFile, log)
			}
			if err := rerun(); err != nil {
				return err
			}

			watcher, err := createWatcher(filename)
			if err != nil {
				return err
			}
			defer cleanupWatcher(watcher)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("Watching for changes, press Ctrl+C to stop")
			return runWatchLoop(ctx, watcher, filename, rerun, log)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "write output to file instead of stdout")

	return cmd
}

// runBatchFile evaluates filename and writes the formatted batch
func runBatchFile(cmd *cobra.Command, filename string, defaults session.Defaults, outputFile string, log *logger.Logger) error {
	// #nosec G304 - path is validated by validateWatchFilePath
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer cleanupFile(file)

	result, err := evaluateBatch(file, defaults, log)
	if err != nil {
		return err
	}
	output, err := formatBatch(result, getOutputFormat())
	if err != nil {
		return err
	}
	return handleOutputDestination(cmd, output, outputFile)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil {
		newLogger("watch").Warn("failed to close watcher: %v", err)
	}
}

// cleanupFile safely closes file with error logging
func cleanupFile(file *os.File) {
	if err := file.Close(); err != nil {
		newLogger("watch").Warn("failed to close file: %v", err)
	}
}

// createWatcher watches the directory containing filename
func createWatcher(filename string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return watcher, nil
}

// runWatchLoop calls onChange for every write or re-creation of filename
// until ctx is done. Errors from onChange are logged and watching continues.
func runWatchLoop(ctx context.Context, watcher *fsnotify.Watcher, filename string, onChange func() error, log *logger.Logger) error {
	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isRelevantEvent(event, target) {
				continue
			}
			log.Debug("change detected: %s", event.Op)
			if err := onChange(); err != nil {
				log.Error("failed to evaluate %s: %v", filename, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

// isRelevantEvent reports whether event rewrote the watched file
func isRelevantEvent(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot watch directory, must be a file")
	}

	return nil
}
