package cmd

import (
	"fmt"

	"hslboard/pkg/transit"
	"hslboard/pkg/tui"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var stopsCmd = &cobra.Command{
	Use:   "stops <code or name>",
	Short: "List stops matching a code or name",
	Long:  "Search the Digitransit stop index and print every match with its GTFS id and the routes serving it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd, nil)
		if err != nil {
			return err
		}

		client := s.client()

		var stops []transit.Stop
		withSpinner(fmt.Sprintf("Searching stops for '%s'...", args[0]), func() {
			stops, err = client.SearchStops(cmd.Context(), args[0])
		})
		if err != nil {
			return err
		}

		printStops(cmd, args[0], stops)
		return nil
	},
}

func printStops(cmd *cobra.Command, query string, stops []transit.Stop) {
	out := cmd.OutOrStdout()
	title := cases.Title(language.Finnish).String(query)

	fmt.Fprintln(out, tui.Accent(fmt.Sprintf("\n--- 🚏 Stops matching %s ---", title)))
	for _, s := range stops {
		fmt.Fprintf(out, "• %s (%s)\n", tui.StopLabel(s), s.ID)
	}
	fmt.Fprintln(out)
}

func init() {
	rootCmd.AddCommand(stopsCmd)
}
