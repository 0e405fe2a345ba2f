package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/navagraha/dasha/internal/chart"
	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/vimshottari"
)

var watchCmd = &cobra.Command{
	Use:   "watch <chart.toml>",
	Short: "Recompute the timeline whenever a chart file changes",
	Long: "Watch renders the timeline for a chart file and re-renders it on " +
		"every save, until interrupted. Useful while refining a chart's " +
		"birth data.",
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Int("depth", 0, "subdivision depth 1-3 (overrides config)")
	watchCmd.Flags().String("format", "", "output format: text or json (overrides config)")
	watchCmd.Flags().String("at", "", `reference instant for active marking (RFC 3339, or "now")`)

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyTimelineOverrides(cmd, &cfg)

	at, err := timeFlag(cmd, "at")
	if err != nil {
		return err
	}

	path := args[0]
	if err := renderChart(cmd, cfg, path, at); err != nil {
		return err
	}

	w, err := chart.NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			// A bad intermediate save keeps the watch alive; the next
			// save gets another chance.
			if err := renderChart(cmd, cfg, path, at); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "reload failed: %v\n", err)
			}
		}
	}
}

// renderChart loads a chart file, computes its timeline, and emits it.
func renderChart(cmd *cobra.Command, cfg config.Config, path string, at *time.Time) error {
	c, err := chart.Load(path)
	if err != nil {
		return err
	}
	periods, meta, err := vimshottari.Build(vimshottari.Request{
		Birth:         c.Birth,
		MoonLongitude: c.MoonLongitude,
		Depth:         cfg.Depth,
		At:            at,
	})
	if err != nil {
		return err
	}
	return emit(cmd, cfg, periods, meta)
}
