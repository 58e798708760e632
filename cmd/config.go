package cmd

import (
	"fmt"
	"strings"

	"hslboard/pkg/config"
	"hslboard/pkg/transit"
	"hslboard/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hslboard defaults",
	Long:  "View or edit the defaults saved in ~/.hslboard.yaml (stop code, delays, long names, colours).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		s, err := resolveSettings(cmd, nil, cfg)
		if err != nil {
			return err
		}
		client := s.client()

		flags := cmd.Flags()
		changed := false

		if flags.Changed("set-stop") {
			code, _ := flags.GetString("set-stop")
			code = strings.TrimSpace(code)

			var stop transit.Stop
			var lookupErr error
			withSpinner(fmt.Sprintf("Looking up stop '%s'...", code), func() {
				stop, lookupErr = client.ResolveStop(cmd.Context(), code)
			})
			if lookupErr != nil {
				return fmt.Errorf("could not lookup stop: %w", lookupErr)
			}

			cfg.StopCode = code
			changed = true
			fmt.Fprintf(cmd.OutOrStdout(), "Found %s (ID: %s)\n", tui.StopLabel(stop), stop.ID)
		}
		if flags.Changed("set-delays") {
			on, _ := flags.GetBool("set-delays")
			cfg.ShowDelays = &on
			changed = true
		}
		if flags.Changed("set-long-names") {
			cfg.ShowLongNames, _ = flags.GetBool("set-long-names")
			changed = true
		}
		if flags.Changed("set-accent") {
			cfg.AccentColor, _ = flags.GetString("set-accent")
			changed = true
		}
		if flags.Changed("set-api-key") {
			cfg.APIKey, _ = flags.GetString("set-api-key")
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved.")
			return nil
		}

		if show, _ := flags.GetBool("show"); show {
			return printConfig(cmd, cfg)
		}

		// If no flags are given, launch the interactive form
		return tui.RunConfigTUI(client)
	},
}

func printConfig(cmd *cobra.Command, cfg *config.AppConfig) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.Accent(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))
	if cfg.StopCode == "" {
		fmt.Fprintln(out, "Stop: Not set")
	} else {
		fmt.Fprintf(out, "Stop: %s\n", cfg.StopCode)
	}
	fmt.Fprintf(out, "Show Delays: %t\n", cfg.DelaysEnabled())
	fmt.Fprintf(out, "Long Names: %t\n", cfg.ShowLongNames)
	fmt.Fprintf(out, "Accent Color: %s\n", tui.AccentColor(cfg))
	if cfg.APIKey != "" {
		fmt.Fprintln(out, "API Key: set")
	}
	fmt.Fprintln(out)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-stop", "s", "", "Save the default stop code")
	configCmd.Flags().Bool("set-delays", true, "Save whether delays are shown")
	configCmd.Flags().Bool("set-long-names", false, "Save whether full headsigns are shown")
	configCmd.Flags().String("set-accent", "", "Save the accent colour (ANSI number or #hex)")
	configCmd.Flags().String("set-api-key", "", "Save the Digitransit subscription key")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
