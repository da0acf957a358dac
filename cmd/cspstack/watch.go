package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the "watch" subcommand for auto-rebuilding when the
// parameter overrides file changes.
func newWatchCmd() *cobra.Command {
	var (
		debounce     time.Duration
		outputFormat string
		outputFile   string
		paramsFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch [stack]",
		Short: "Auto-rebuild on parameter file changes",
		Long: `Watch monitors the parameter overrides file and rebuilds the stack on changes.

The watch command:
- Monitors the params file for write events
- Rebuilds the template on each change
- Debounces rapid changes to avoid excessive rebuilds

Examples:
    cspstack watch report --params dev-params.yaml -o template.json
    cspstack watch reportdomain --params prod-params.yaml --debounce 1s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if paramsFile == "" {
				return fmt.Errorf("watch requires --params")
			}
			return runWatch(args[0], watchOptions{
				debounce:     debounce,
				outputFormat: outputFormat,
				outputFile:   outputFile,
				paramsFile:   paramsFile,
			})
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format for build: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for build (default: stdout)")
	cmd.Flags().StringVarP(&paramsFile, "params", "p", "", "YAML file with parameter default overrides")

	return cmd
}

type watchOptions struct {
	debounce     time.Duration
	outputFormat string
	outputFile   string
	paramsFile   string
}

// runWatch monitors the params file and rebuilds on changes.
func runWatch(stack string, opts watchOptions) error {
	if _, err := lookupStack(stack); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the containing directory; editors replace files on save, which
	// drops a watch registered on the file itself.
	absParams, err := filepath.Abs(opts.paramsFile)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absParams)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absParams), err)
	}
	fmt.Printf("Watching: %s\n", absParams)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initial build
	fmt.Println("Running initial build...")
	runWatchBuild(stack, opts)

	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != absParams {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, rebuilding...\n", time.Now().Format("15:04:05"))
			runWatchBuild(stack, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// runWatchBuild rebuilds the stack and reports the outcome without
// terminating the watch loop on failure.
func runWatchBuild(stack string, opts watchOptions) {
	if err := runBuild(stack, opts.outputFormat, opts.outputFile, opts.paramsFile); err != nil {
		fmt.Fprintf(os.Stderr, "Build error: %v\n", err)
		return
	}

	if opts.outputFile != "" {
		fmt.Printf("Build successful, wrote %s\n", opts.outputFile)
	}
}
