package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hslboard/pkg/board"
	"hslboard/pkg/logging"
	"hslboard/pkg/refresh"
	"hslboard/pkg/transit"
	"hslboard/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "hslboard [stop code] [delayoff]",
	Short: "A live departure board for a single HSL stop",
	Long: `hslboard looks up a stop through the Digitransit API and keeps a list of
its next departures, including realtime delays, on screen until you quit.`,
	Example: `  hslboard E3158
  hslboard E3158 delayoff
  hslboard Tapiola --pick --long-names`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	if s.StopCode == "" {
		return errors.New("a stop code is required, e.g. 'hslboard E3158' (or save one with 'hslboard config --set-stop E3158')")
	}

	logger, err := logging.New(logging.Options{Debug: s.Debug, File: s.LogFile})
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !s.ShowDelays {
		fmt.Println("Displaying delays disabled.")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := s.client()

	watched, err := findStop(ctx, client, s)
	if err != nil {
		var notFound *transit.StopNotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return fmt.Errorf("could not find stop with code %s: %w", s.StopCode, err)
	}

	logger.Info("watching stop",
		zap.String("id", watched.ID),
		zap.String("name", watched.Name),
		zap.String("code", watched.Code),
		zap.Int("routes", watched.Routes.Len()),
	)

	styles := board.PlainStyles()
	if board.IsTerminal(os.Stdout) {
		styles = board.DefaultStyles(s.Accent)
	}
	b := board.New(os.Stdout, watched,
		board.WithLongNames(s.LongNames),
		board.WithStyles(styles),
	)

	opts := transit.ParseOptions{ShowDelays: s.ShowDelays, Limit: s.Limit}
	fetch := func(ctx context.Context) ([]transit.Departure, error) {
		return client.FetchDepartures(ctx, watched.ID, opts)
	}

	loop := refresh.NewLoop(logger, fetch, b,
		refresh.WithInterval(s.Interval),
		refresh.WithThreshold(s.Threshold),
		refresh.WithScreenSave(s.ScreenSave),
	)

	return loop.Run(ctx)
}

// findStop runs the one-off stop search before the board starts
func findStop(ctx context.Context, client *transit.Client, s *settings) (transit.Stop, error) {
	if s.Pick {
		var stops []transit.Stop
		var err error
		withSpinner("Finding stop...", func() {
			stops, err = client.SearchStops(ctx, s.StopCode)
		})
		if err != nil {
			return transit.Stop{}, err
		}
		return tui.RunStopPicker(stops)
	}

	var found transit.Stop
	var err error
	withSpinner("Finding stop...", func() {
		found, err = client.ResolveStop(ctx, s.StopCode)
	})
	return found, err
}

// withSpinner runs action behind a spinner, or plainly when stdout is not a
// terminal.
func withSpinner(title string, action func()) {
	if !board.IsTerminal(os.Stdout) {
		fmt.Println(title)
		action()
		return
	}

	_ = spinner.New().
		Title(title).
		Action(action).
		Run()
}

func init() {
	addBoardFlags(rootCmd)
}

func addBoardFlags(c *cobra.Command) {
	pf := c.PersistentFlags()
	pf.String("endpoint", transit.DefaultEndpoint, "Digitransit GraphQL endpoint")
	pf.String("api-key", "", "Digitransit subscription key (or HSLBOARD_API_KEY)")
	pf.Duration("timeout", 30*time.Second, "Timeout of a single API request, 0 to wait forever")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.Bool("debug", false, "Enable debug logging")

	f := c.Flags()
	f.Bool("delays", true, "Apply realtime delays to departure times")
	f.Bool("long-names", false, "Show the full headsign next to the route number")
	f.Duration("threshold", refresh.DefaultThreshold, "Refetch once the next departure is closer than this")
	f.Duration("interval", refresh.DefaultInterval, "Time between screen refreshes")
	f.Int("limit", 0, "Number of departures to request, 0 for the API default")
	f.Bool("pick", false, "Choose interactively when several stops match")
	f.Bool("no-screensave", false, "Do not shift the board around to avoid burn-in")
}
