package tui

import (
	"context"
	"fmt"
	"strings"

	"hslboard/pkg/config"
	"hslboard/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// RunConfigTUI edits the saved board defaults in one form
func RunConfigTUI(client *transit.Client) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	stopCode := cfg.StopCode
	showDelays := cfg.DelaysEnabled()
	longNames := cfg.ShowLongNames
	accent := AccentColor(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default stop code").
				Description("Used when hslboard is started without a stop code.").
				Placeholder("e.g. E3158").
				Value(&stopCode),

			huh.NewConfirm().
				Title("Show delays?").
				Value(&showDelays),

			huh.NewConfirm().
				Title("Show full headsigns next to route numbers?").
				Value(&longNames),

			huh.NewSelect[string]().
				Title("Accent colour").
				Options(
					huh.NewOption(fmt.Sprintf("%s Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s HSL Blue", colorBlock("33")), "33"),
					huh.NewOption(fmt.Sprintf("%s Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Green", colorBlock("42")), "42"),
				).
				Value(&accent),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	stopCode = strings.TrimSpace(stopCode)
	if stopCode != "" && stopCode != cfg.StopCode {
		var stop transit.Stop
		var lookupErr error

		_ = spinner.New().
			Title(fmt.Sprintf("Looking up stop '%s'...", stopCode)).
			Action(func() {
				stop, lookupErr = client.ResolveStop(context.Background(), stopCode)
			}).
			Run()

		if lookupErr != nil {
			fmt.Println(Error(fmt.Sprintf("❌ %v", lookupErr)))
			return nil
		}
		fmt.Println(Accent(fmt.Sprintf("Found %s", StopLabel(stop))))
	}

	cfg.StopCode = stopCode
	cfg.ShowDelays = &showDelays
	cfg.ShowLongNames = longNames
	cfg.AccentColor = accent

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(Accent("\n✅ Settings saved.\n"))
	return nil
}
