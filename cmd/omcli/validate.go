package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fchapoton/oriented-matroids/systemfile"
)

func validateCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate <pattern>...",
		Short: "Run the axiom checks for system files",
		Long: `Validate loads every system file matching the given glob patterns
(with ** support) and runs the exhaustive axiom check for each
system's kind. With --watch it keeps running and re-validates a file
whenever it changes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files match %v", args)
			}
			failed := runValidation(files)
			if watch {
				return watchFiles(files)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate files when they change")

	return cmd
}

// expandPatterns resolves glob patterns to a sorted, deduplicated file
// list. Plain paths pass through unchanged.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = struct{}{}
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// runValidation validates every file and prints a report. It returns
// the number of failures.
func runValidation(files []string) int {
	runID := uuid.New().String()
	started := time.Now()
	failed := 0
	for _, file := range files {
		if err := validateFile(file); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", file, err)
		} else {
			fmt.Printf("ok   %s\n", file)
		}
	}
	fmt.Printf("run %s: %d files, %d failed (%s)\n",
		runID, len(files), failed, time.Since(started).Round(time.Millisecond))
	return failed
}

func validateFile(path string) error {
	doc, err := systemfile.Load(path)
	if err != nil {
		return err
	}
	sys, err := doc.System()
	if err != nil {
		return err
	}
	return sys.Validate()
}

// watchFiles re-validates a file whenever it is written. Directories
// are watched rather than the files themselves so editors that replace
// files on save are still caught.
func watchFiles(files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]struct{}, len(files))
	dirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	slog.Info("Watching for changes", "files", len(watched), "dirs", len(dirs))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}
			slog.Debug("File changed", "path", event.Name)
			runValidation([]string{event.Name})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		case <-sigCh:
			slog.Info("Shutting down watcher")
			return nil
		}
	}
}
