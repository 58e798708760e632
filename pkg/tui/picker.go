package tui

import (
	"fmt"
	"strings"

	"hslboard/pkg/transit"

	"github.com/charmbracelet/huh"
)

// StopLabel describes a stop in one line: name, code, platform and the
// routes serving it.
func StopLabel(s transit.Stop) string {
	label := strings.TrimSpace(s.Name + " " + s.Code)
	if s.Platform != "" {
		label += fmt.Sprintf(" [%s]", s.Platform)
	}

	var names []string
	seen := make(map[string]bool)
	for _, r := range s.Routes.Entries() {
		if r.ShortName == "" || seen[r.ShortName] {
			continue
		}
		seen[r.ShortName] = true
		names = append(names, r.ShortName)
	}
	if len(names) > 0 {
		label += " " + strings.Join(names, ", ")
	}
	return label
}

// StopOptions builds one picker option per stop, valued by index
func StopOptions(stops []transit.Stop) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(stops))
	for i, s := range stops {
		opts = append(opts, huh.NewOption(StopLabel(s), i))
	}
	return opts
}

// RunStopPicker asks which of several matching stops to watch. A single stop
// is returned without asking.
func RunStopPicker(stops []transit.Stop) (transit.Stop, error) {
	if len(stops) == 0 {
		return transit.Stop{}, &transit.StopNotFoundError{}
	}
	if len(stops) == 1 {
		return stops[0], nil
	}

	var selected int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Several stops match. Which one do you want to watch?").
				Options(StopOptions(stops)...).
				Value(&selected).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return transit.Stop{}, err
	}

	return stops[selected], nil
}
