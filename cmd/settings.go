package cmd

import (
	"fmt"
	"strings"
	"time"

	"hslboard/pkg/config"
	"hslboard/pkg/refresh"
	"hslboard/pkg/transit"
	"hslboard/pkg/tui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "HSLBOARD"

// settings is the effective configuration: flags, then HSLBOARD_* environment
// variables, then ~/.hslboard.yaml, then built-in defaults.
type settings struct {
	StopCode   string
	ShowDelays bool
	LongNames  bool
	Threshold  time.Duration
	Interval   time.Duration
	Limit      int
	Pick       bool
	ScreenSave bool

	Endpoint string
	APIKey   string
	Timeout  time.Duration
	Accent   string
	LogFile  string
	Debug    bool
}

func loadSettings(cmd *cobra.Command, args []string) (*settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return resolveSettings(cmd, args, cfg)
}

func resolveSettings(cmd *cobra.Command, args []string, cfg *config.AppConfig) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("stop", cfg.StopCode)
	v.SetDefault("delays", cfg.DelaysEnabled())
	v.SetDefault("long-names", cfg.ShowLongNames)
	v.SetDefault("api-key", cfg.APIKey)
	v.SetDefault("accent", tui.AccentColor(cfg))
	v.SetDefault("log-file", cfg.LogFile)
	if cfg.Threshold > 0 {
		v.SetDefault("threshold", cfg.Threshold)
	}
	if cfg.Interval > 0 {
		v.SetDefault("interval", cfg.Interval)
	}
	if cfg.Limit > 0 {
		v.SetDefault("limit", cfg.Limit)
	}
	if cfg.Endpoint != "" {
		v.SetDefault("endpoint", cfg.Endpoint)
	}
	if cfg.Timeout > 0 {
		v.SetDefault("timeout", cfg.Timeout)
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	s := &settings{
		StopCode:   v.GetString("stop"),
		ShowDelays: v.GetBool("delays"),
		LongNames:  v.GetBool("long-names"),
		Threshold:  v.GetDuration("threshold"),
		Interval:   v.GetDuration("interval"),
		Limit:      v.GetInt("limit"),
		Pick:       v.GetBool("pick"),
		ScreenSave: !v.GetBool("no-screensave"),
		Endpoint:   v.GetString("endpoint"),
		APIKey:     v.GetString("api-key"),
		Timeout:    v.GetDuration("timeout"),
		Accent:     v.GetString("accent"),
		LogFile:    v.GetString("log-file"),
		Debug:      v.GetBool("debug"),
	}

	// hslboard <stop code> [delayoff]
	if len(args) > 0 {
		s.StopCode = args[0]
	}
	if len(args) > 1 {
		if args[1] != "delayoff" {
			return nil, fmt.Errorf("unknown argument %q, only 'delayoff' is accepted after the stop code", args[1])
		}
		s.ShowDelays = false
	}

	if s.Threshold <= 0 {
		s.Threshold = refresh.DefaultThreshold
	}
	if s.Interval <= 0 {
		s.Interval = refresh.DefaultInterval
	}
	if s.Endpoint == "" {
		s.Endpoint = transit.DefaultEndpoint
	}

	return s, nil
}

func (s *settings) client() *transit.Client {
	return transit.NewClient(
		transit.WithEndpoint(s.Endpoint),
		transit.WithAPIKey(s.APIKey),
		transit.WithTimeout(s.Timeout),
	)
}
