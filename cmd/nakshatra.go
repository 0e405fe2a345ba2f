package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/navagraha/dasha/internal/render"
	"github.com/navagraha/dasha/internal/vimshottari"
)

var nakshatraCmd = &cobra.Command{
	Use:   "nakshatra <longitude>",
	Short: "Locate a sidereal longitude in the nakshatra partition",
	Long: "Nakshatra maps a sidereal longitude in degrees to its nakshatra, " +
		"the fraction already traversed, the starting dasha lord, and the " +
		"mahadasha balance remaining at that position.",
	Args: cobra.ExactArgs(1),
	RunE: runNakshatra,
}

func init() {
	rootCmd.AddCommand(nakshatraCmd)
}

func runNakshatra(cmd *cobra.Command, args []string) error {
	longitude, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing longitude %q: %w", args[0], err)
	}

	index, fraction, err := vimshottari.Locate(longitude)
	if err != nil {
		return err
	}
	lord, remaining := vimshottari.Balance(index, fraction)

	fmt.Fprintln(cmd.OutOrStdout(), render.Summary(longitude, index, fraction, lord, remaining))
	return nil
}
