package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"sweep/internal/config"
	"sweep/internal/ui"
	"sweep/internal/watch"
)

var settleFlag time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and organize new files as they appear",
	Long: `Subscribe to file-creation events on the target directory and move each
new file into its category subfolder. Every file waits a short settle
delay before being moved, giving whatever is writing it time to finish.

The watch is non-recursive: files placed inside the category subfolders
are never picked up again. Runs until interrupted (Ctrl-C / SIGTERM).

When log_file is set in the config, watch activity is also appended to
a size-rotated log file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveTarget(args)
		if err != nil {
			return err
		}

		cfg := config.Load()
		table, err := cfg.Table()
		if err != nil {
			return err
		}

		wcfg := watch.DefaultConfig()
		if cmd.Flags().Changed("settle") {
			wcfg.SettleDelay = settleFlag
		} else if cfg.SettleDelay > 0 {
			wcfg.SettleDelay = cfg.SettleDelay
		}
		if cfg.LogFile != "" {
			wcfg.Logger = log.New(&lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
			}, "[watch] ", log.LstdFlags)
		}

		w := watch.New(table, wcfg)
		if err := w.Start(dir); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("%s Watching %s (Ctrl-C to stop)\n", ui.RenderAccent("→"), dir)

		events := w.Events()
		errs := w.Errors()
		for {
			select {
			case <-ctx.Done():
				fmt.Printf("%s Stopping\n", ui.RenderAccent("→"))
				return w.Stop()

			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev.Outcome {
				case watch.OutcomeMoved:
					fmt.Printf("%s %s -> %s/\n", ui.RenderPass("✓"), filepath.Base(ev.Path), ev.Detail)
				case watch.OutcomeError:
					fmt.Printf("%s %s: %s\n", ui.RenderFail("✗"), filepath.Base(ev.Path), ev.Detail)
				}

			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				fmt.Fprintf(os.Stderr, "%s watch error: %v\n", ui.RenderWarn("⚠"), err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().DurationVar(&settleFlag, "settle", time.Second, "delay before moving a newly created file")
}
