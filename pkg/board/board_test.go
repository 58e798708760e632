package board

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"hslboard/pkg/timefmt"
	"hslboard/pkg/transit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boardNow = time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)

func testStop() transit.Stop {
	routes := transit.NewRouteNames()
	routes.Set("airport", "615")
	routes.Set("Kamppi", "102T")

	return transit.Stop{ID: "HSL:2222234", Name: "Tapiola (M)", Code: "E3158", Routes: routes}
}

func testBoard(out *bytes.Buffer, opts ...Option) *Board {
	f := &timefmt.Formatter{
		Now:      func() time.Time { return boardNow },
		Location: time.UTC,
	}
	opts = append([]Option{WithFormatter(f), WithStyles(PlainStyles())}, opts...)
	return New(out, testStop(), opts...)
}

func testDepartures() []transit.Departure {
	base := boardNow.Unix()
	return []transit.Departure{
		{Headsign: "Airport via Center", EstimatedTime: base + 5*60},
		{Headsign: "Kamppi", EstimatedTime: base + 12*60, DelayMinutes: 2},
		{Headsign: "Espoon keskus", EstimatedTime: base + 65*60, DelayMinutes: -1},
	}
}

func TestBoard_Draw(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out)

	err := b.Draw(testDepartures(), boardNow.Add(-30*time.Second), ScreenOffset{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Tapiola (M) E3158 Next Departures:",
		"",
		"615           at 9:05 in 5min",
		"102T          at 9:12 in 12min, 2min late",
		"Espoon keskus at 10:05 in 1h 5min, 1min early",
		"",
		"Last API refresh 0min ago.",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestBoard_DrawLongNames(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out, WithLongNames(true))

	require.NoError(t, b.Draw(testDepartures()[:2], boardNow, ScreenOffset{}))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "615 Airport via Center at 9:05 in 5min", lines[2])
	assert.Equal(t, "102T Kamppi            at 9:12 in 12min, 2min late", lines[3])
}

func TestBoard_DrawOffset(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out)

	deps := testDepartures()[:1]
	require.NoError(t, b.Draw(deps, boardNow, ScreenOffset{X: 3, Y: 2}))

	want := strings.Join([]string{
		"",
		"",
		"   Tapiola (M) E3158 Next Departures:",
		"",
		"   615 at 9:05 in 5min",
		"",
		"   Last API refresh 0min ago.",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestBoard_DrawClears(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out, WithClear(true))

	require.NoError(t, b.Draw(nil, boardNow, ScreenOffset{}))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))

	out.Reset()
	b = testBoard(&out)
	require.NoError(t, b.Draw(nil, boardNow, ScreenOffset{}))
	assert.False(t, strings.Contains(out.String(), "\033"), "a buffer is not a terminal")
}

func TestBoard_DrawEmpty(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out)

	require.NoError(t, b.Draw([]transit.Departure{}, boardNow.Add(-2*time.Minute), ScreenOffset{}))
	assert.Equal(t, "Tapiola (M) E3158 Next Departures:\n\n\nLast API refresh 2min ago.\n", out.String())
}

func TestBoard_DisplayName(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out)

	assert.Equal(t, "615", b.DisplayName("Airport via Center"))
	assert.Equal(t, "102T", b.DisplayName("KAMPPI"))
	assert.Equal(t, "Matinkylä", b.DisplayName("Matinkylä"))
}

func TestBoard_PastDeparture(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(&out)

	lines := b.Lines([]transit.Departure{{Headsign: "Kamppi", EstimatedTime: boardNow.Unix() - 3*60}}, boardNow)
	assert.Equal(t, "102T at 8:57 in 3min", lines[2])
}

func TestNewScreenOffset(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		o := NewScreenOffset(r)
		assert.GreaterOrEqual(t, o.X, 0)
		assert.LessOrEqual(t, o.X, MaxOffsetX)
		assert.GreaterOrEqual(t, o.Y, 0)
		assert.LessOrEqual(t, o.Y, MaxOffsetY)
	}
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles("")
	assert.False(t, s.Plain)
	assert.Equal(t, "plain", PlainStyles().render(s.Title, "plain"))
}
