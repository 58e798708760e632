package refresh

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"hslboard/pkg/board"
	"hslboard/pkg/logging"
	"hslboard/pkg/timefmt"
	"hslboard/pkg/transit"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Defaults used when the config leaves them unset
const (
	DefaultInterval  = 5 * time.Second
	DefaultThreshold = 60 * time.Second
)

// FetchFunc retrieves the current departures of the watched stop
type FetchFunc func(ctx context.Context) ([]transit.Departure, error)

// Drawer renders a snapshot of the state
type Drawer interface {
	Draw(deps []transit.Departure, refreshedAt time.Time, offset board.ScreenOffset) error
}

// State is what the board shows. It only changes on a successful fetch.
type State struct {
	Departures  []transit.Departure
	RefreshedAt time.Time
	Offset      board.ScreenOffset
	HasData     bool
}

// ShouldFetch decides whether a tick needs fresh data: when nothing has been
// fetched, when the last fetch was empty, or when the next departure is
// closer than threshold.
func ShouldFetch(s State, f *timefmt.Formatter, threshold time.Duration) bool {
	if !s.HasData {
		return true
	}
	next, ok := transit.NextDeparture(s.Departures)
	if !ok {
		return true
	}
	return f.TimeUntil(next.EstimatedTime) < threshold
}

// Loop periodically refreshes and redraws the board
type Loop struct {
	fetch  FetchFunc
	drawer Drawer
	logger *zap.Logger

	interval     time.Duration
	threshold    time.Duration
	screensave   bool
	formatter    *timefmt.Formatter
	rand         *rand.Rand
	fetchTimeout time.Duration

	mu    sync.Mutex
	state State

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// Option customizes a Loop
type Option func(*Loop)

// WithInterval sets the time between ticks
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithThreshold sets how close the next departure must be to trigger a fetch
func WithThreshold(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.threshold = d
		}
	}
}

// WithScreenSave toggles the random offset regenerated on every fetch
func WithScreenSave(on bool) Option {
	return func(l *Loop) { l.screensave = on }
}

// WithFormatter replaces the wall clock used for the fetch decision
func WithFormatter(f *timefmt.Formatter) Option {
	return func(l *Loop) { l.formatter = f }
}

// WithRand sets the source of screen offsets
func WithRand(r *rand.Rand) Option {
	return func(l *Loop) { l.rand = r }
}

// WithFetchTimeout bounds a single background fetch. Zero leaves it to the
// transport.
func WithFetchTimeout(d time.Duration) Option {
	return func(l *Loop) { l.fetchTimeout = d }
}

// NewLoop creates a loop; nothing happens until Tick or Run is called
func NewLoop(logger *zap.Logger, fetch FetchFunc, drawer Drawer, opts ...Option) *Loop {
	l := &Loop{
		fetch:      fetch,
		drawer:     drawer,
		logger:     logger,
		interval:   DefaultInterval,
		threshold:  DefaultThreshold,
		screensave: true,
		formatter:  timefmt.New(),
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns a copy of the current state
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.state
	s.Departures = append([]transit.Departure(nil), l.state.Departures...)
	return s
}

// Tick starts a background fetch if one is due and none is running, then
// redraws from the current state. It never waits for the network.
func (l *Loop) Tick(ctx context.Context) {
	state := l.State()

	if ShouldFetch(state, l.formatter, l.threshold) && l.inFlight.CompareAndSwap(false, true) {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer l.inFlight.Store(false)
			l.refresh(ctx)
		}()
	}

	if !state.HasData {
		return
	}
	if err := l.drawer.Draw(state.Departures, state.RefreshedAt, state.Offset); err != nil {
		l.logger.Error("failed to draw board", zap.Error(err))
	}
}

func (l *Loop) refresh(ctx context.Context) {
	if l.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
		defer cancel()
	}

	deps, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("failed to refresh departures", zap.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.Departures = deps
	l.state.RefreshedAt = l.formatter.Now()
	l.state.HasData = true
	if l.screensave {
		l.state.Offset = board.NewScreenOffset(l.rand)
	}

	fields := []zap.Field{
		zap.Int("departures", len(deps)),
		zap.Int("realtime", transit.CountRealtime(deps)),
	}
	if next, ok := transit.NextDeparture(deps); ok {
		fields = append(fields,
			zap.String("next", next.Headsign),
			zap.String("next_at", l.formatter.DateTime(next.EstimatedTime)),
			zap.String("next_state", next.RealtimeState),
		)
	}
	l.logger.Debug("refreshed departures", fields...)
}

// Wait blocks until the fetch in flight, if any, has finished
func (l *Loop) Wait() {
	l.wg.Wait()
}

// Run ticks immediately and then on every interval until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.Recover(logging.CronLogger(l.logger))))
	c.Schedule(cron.Every(l.interval), cron.FuncJob(func() {
		l.Tick(ctx)
	}))

	l.Tick(ctx)
	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	l.Wait()
	return nil
}
