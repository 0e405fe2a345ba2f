package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/navagraha/dasha/internal/chart"
	"github.com/navagraha/dasha/internal/config"
	"github.com/navagraha/dasha/internal/render"
	"github.com/navagraha/dasha/internal/vimshottari"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Compute the dasha timeline for a birth chart",
	Long: "Timeline computes the full 120-year Vimshottari period sequence. " +
		"Inputs come from a chart file (--chart) or directly from --birth " +
		"and --moon; the result is printed as an indented tree or JSON.",
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().String("chart", "", "chart file (TOML)")
	timelineCmd.Flags().String("birth", "", "birth instant (RFC 3339)")
	timelineCmd.Flags().Float64("moon", 0, "sidereal Moon longitude in degrees")
	timelineCmd.Flags().Int("depth", 0, "subdivision depth 1-3 (overrides config)")
	timelineCmd.Flags().String("from", "", "window start (RFC 3339); periods ending before are dropped")
	timelineCmd.Flags().String("to", "", "window end (RFC 3339); periods starting after are dropped")
	timelineCmd.Flags().String("at", "", `reference instant for active marking (RFC 3339, or "now")`)
	timelineCmd.Flags().String("format", "", "output format: text or json (overrides config)")

	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	applyTimelineOverrides(cmd, &cfg)

	birth, moon, err := resolveBirthInputs(cmd)
	if err != nil {
		return err
	}

	req := vimshottari.Request{
		Birth:         birth,
		MoonLongitude: moon,
		Depth:         cfg.Depth,
	}
	if req.From, err = timeFlag(cmd, "from"); err != nil {
		return err
	}
	if req.To, err = timeFlag(cmd, "to"); err != nil {
		return err
	}
	if req.At, err = timeFlag(cmd, "at"); err != nil {
		return err
	}

	periods, meta, err := vimshottari.Build(req)
	if err != nil {
		return err
	}
	return emit(cmd, cfg, periods, meta)
}

// applyTimelineOverrides applies CLI flag values to the loaded config.
func applyTimelineOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetInt("depth"); v > 0 {
		cfg.Depth = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("no-color"); v {
		cfg.Color = false
	}
}

// resolveBirthInputs yields the birth instant and Moon longitude from
// either a chart file or the direct flags. The chart file wins when both
// are given.
func resolveBirthInputs(cmd *cobra.Command) (time.Time, float64, error) {
	if path, _ := cmd.Flags().GetString("chart"); path != "" {
		c, err := chart.Load(path)
		if err != nil {
			return time.Time{}, 0, err
		}
		return c.Birth, c.MoonLongitude, nil
	}

	birthStr, _ := cmd.Flags().GetString("birth")
	if birthStr == "" {
		return time.Time{}, 0, fmt.Errorf("either --chart or --birth is required")
	}
	birth, err := time.Parse(time.RFC3339, birthStr)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("parsing --birth: %w", err)
	}
	if !cmd.Flags().Changed("moon") {
		return time.Time{}, 0, fmt.Errorf("--moon is required with --birth")
	}
	moon, _ := cmd.Flags().GetFloat64("moon")
	return birth.UTC(), moon, nil
}

// timeFlag parses an optional RFC 3339 flag, with "now" accepted as the
// current instant. Returns nil when the flag is unset.
func timeFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return nil, nil
	}
	if s == "now" {
		now := time.Now().UTC()
		return &now, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("parsing --%s: %w", name, err)
	}
	u := t.UTC()
	return &u, nil
}

// emit writes the timeline to stdout in the configured format.
func emit(cmd *cobra.Command, cfg config.Config, periods []vimshottari.Period, meta vimshottari.Metadata) error {
	switch cfg.Format {
	case config.FormatJSON:
		data, err := render.JSON(periods, meta)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case config.FormatText:
		r := &render.TreeRenderer{UseColor: cfg.Color && isTerminal()}
		fmt.Fprint(cmd.OutOrStdout(), r.Render(periods, meta))
	default:
		return fmt.Errorf("unknown format %q (want text or json)", cfg.Format)
	}
	return nil
}

// isTerminal reports whether stdout looks like a terminal; piped output
// stays free of escape codes.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
