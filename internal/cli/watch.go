package cli

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rpclens/rpclens/internal/config"
	"github.com/rpclens/rpclens/internal/report"
)

func WatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-inspect captured exchanges whenever the document or capture file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			if cfg.Capture == "" {
				return fmt.Errorf("capture file is required")
			}
			return runWatch(cmd, cfg)
		},
	}

	config.BindCommonFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, cfg *config.Config) error {
	if err := runOnce(cmd, cfg); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range []string{cfg.Spec, cfg.Capture} {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s and %s\n", cfg.Spec, cfg.Capture)

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editors replace files on save; re-add so renamed inodes
			// stay watched.
			watcher.Add(event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := runOnce(cmd, cfg); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "inspection failed: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}

func runOnce(cmd *cobra.Command, cfg *config.Config) error {
	results, err := inspectCapture(cmd, cfg)
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), results, cfg.Format())
}
