package board

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"hslboard/pkg/timefmt"
	"hslboard/pkg/transit"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const clearScreen = "\033[H\033[2J"

// Offsets stay within these bounds so the board never drifts far
const (
	MaxOffsetX = 10
	MaxOffsetY = 5
)

// ScreenOffset shifts the whole board right by X columns and down by Y rows
// so a static display does not burn in.
type ScreenOffset struct {
	X int
	Y int
}

// NewScreenOffset draws a random offset within MaxOffsetX and MaxOffsetY
func NewScreenOffset(r *rand.Rand) ScreenOffset {
	return ScreenOffset{
		X: r.Intn(MaxOffsetX + 1),
		Y: r.Intn(MaxOffsetY + 1),
	}
}

// Board renders the departures of one stop
type Board struct {
	out       io.Writer
	stop      transit.Stop
	formatter *timefmt.Formatter
	styles    Styles
	longNames bool
	clear     bool
}

// Option customizes a Board
type Option func(*Board)

// WithLongNames appends the full headsign after the route short name
func WithLongNames(on bool) Option {
	return func(b *Board) { b.longNames = on }
}

// WithStyles replaces the default colours
func WithStyles(s Styles) Option {
	return func(b *Board) { b.styles = s }
}

// WithFormatter replaces the wall clock formatter
func WithFormatter(f *timefmt.Formatter) Option {
	return func(b *Board) { b.formatter = f }
}

// WithClear forces clearing the screen before each draw on or off
func WithClear(on bool) Option {
	return func(b *Board) { b.clear = on }
}

// New creates a board writing to out. The screen is cleared before each
// draw only if out is a terminal.
func New(out io.Writer, stop transit.Stop, opts ...Option) *Board {
	b := &Board{
		out:       out,
		stop:      stop,
		formatter: timefmt.New(),
		styles:    DefaultStyles(DefaultAccent),
		clear:     IsTerminal(out),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// DisplayName resolves the name column for a headsign through the stop's
// route names, falling back to the headsign itself.
func (b *Board) DisplayName(headsign string) string {
	route, ok := b.stop.Routes.Match(headsign)
	if !ok {
		return headsign
	}
	if b.longNames {
		return route.ShortName + " " + headsign
	}
	return route.ShortName
}

// Draw writes one full frame
func (b *Board) Draw(deps []transit.Departure, refreshedAt time.Time, offset ScreenOffset) error {
	w := bufio.NewWriter(b.out)

	if b.clear {
		w.WriteString(clearScreen)
	}
	w.WriteString(strings.Repeat("\n", offset.Y))

	for _, line := range b.Lines(deps, refreshedAt) {
		if line != "" {
			w.WriteString(strings.Repeat(" ", offset.X))
		}
		w.WriteString(line)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to draw board: %w", err)
	}
	return nil
}

// Lines returns the frame content without the screen offset
func (b *Board) Lines(deps []transit.Departure, refreshedAt time.Time) []string {
	title := strings.TrimSpace(b.stop.Name + " " + b.stop.Code)
	lines := []string{
		b.styles.render(b.styles.Title, title+" Next Departures:"),
		"",
	}

	names := make([]string, len(deps))
	width := 0
	for i, d := range deps {
		names[i] = b.DisplayName(d.Headsign)
		if w := lipgloss.Width(names[i]); w > width {
			width = w
		}
	}

	for i, d := range deps {
		var sb strings.Builder

		sb.WriteString(b.styles.render(b.styles.Name, names[i]))
		sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(names[i])))
		sb.WriteString(" at ")
		sb.WriteString(b.styles.render(b.styles.Time, b.formatter.ClockTime(d.EstimatedTime)))
		sb.WriteString(" in ")
		sb.WriteString(b.formatter.RelativeDuration(d.EstimatedTime))

		if d.DelayMinutes != 0 {
			sb.WriteString(", ")
			sb.WriteString(b.delayLabel(d.DelayMinutes))
		}

		lines = append(lines, sb.String())
	}

	lines = append(lines, "", b.styles.render(b.styles.Footer,
		fmt.Sprintf("Last API refresh %s ago.", b.formatter.RelativeDuration(refreshedAt.Unix()))))

	return lines
}

func (b *Board) delayLabel(minutes int64) string {
	if minutes < 0 {
		return b.styles.render(b.styles.Early, fmt.Sprintf("%dmin early", -minutes))
	}
	return b.styles.render(b.styles.Late, fmt.Sprintf("%dmin late", minutes))
}
