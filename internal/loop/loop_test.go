package loop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// fakePlatform hands out one batch of events per Poll call.
type fakePlatform struct {
	batches    [][]core.Event
	polls      int
	presented  int
	titles     []string
	presentErr error
	onPresent  func()
}

func (p *fakePlatform) Poll() []core.Event {
	defer func() { p.polls++ }()
	if p.polls < len(p.batches) {
		return p.batches[p.polls]
	}
	return nil
}

func (p *fakePlatform) Present(*core.Surface) error {
	if p.presentErr != nil {
		return p.presentErr
	}
	p.presented++
	if p.onPresent != nil {
		p.onPresent()
	}
	return nil
}

func (p *fakePlatform) SetTitle(title string) {
	p.titles = append(p.titles, title)
}

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func testConfig() Config {
	return Config{
		Sim:   snake.DefaultConfig(),
		FPS:   8,
		Seed:  42,
		Title: "Snake",
	}
}

func newTestLoop(t *testing.T, cfg Config, p Platform, opts ...Option) *Loop {
	t.Helper()
	l, err := New(cfg, p, opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return l
}

func batch(events ...core.Event) []core.Event {
	return events
}

func TestNewRejectsZeroFPS(t *testing.T) {
	cfg := testConfig()
	cfg.FPS = 0
	if _, err := New(cfg, &fakePlatform{}); err == nil {
		t.Error("New() should fail with fps 0")
	}
}

func TestFrameBudget(t *testing.T) {
	l := newTestLoop(t, testConfig(), &fakePlatform{})
	if l.FrameBudget() != 125*time.Millisecond {
		t.Errorf("FrameBudget() = %v, expected 125ms", l.FrameBudget())
	}
}

func TestFrameAdvancesAndPresents(t *testing.T) {
	p := &fakePlatform{}
	l := newTestLoop(t, testConfig(), p)

	if err := l.Frame(); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}

	if head := l.State().Head(); head != (snake.Point{X: 11, Y: 10}) {
		t.Errorf("Head() = %v, expected (11, 10)", head)
	}
	if p.presented != 1 {
		t.Errorf("presented %d frames, expected 1", p.presented)
	}
	if len(p.titles) != 1 || !strings.HasPrefix(p.titles[0], "Snake — Score: ") {
		t.Errorf("titles = %q, expected one score title", p.titles)
	}
	w, h := testConfig().Sim.SurfaceSize()
	if l.Surface().Width() != w || l.Surface().Height() != h {
		t.Errorf("surface is %dx%d, expected %dx%d", l.Surface().Width(), l.Surface().Height(), w, h)
	}
}

func TestQuitStopsBeforeSimulating(t *testing.T) {
	p := &fakePlatform{batches: [][]core.Event{batch(core.KeyDown(core.ActionDown), core.Quit())}}
	l := newTestLoop(t, testConfig(), p)

	if err := l.Frame(); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}

	if l.Running() {
		t.Error("Running() should be false after a quit event")
	}
	if l.State().Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected no simulation after quit", l.State().Ticks())
	}
	if p.presented != 0 {
		t.Errorf("presented %d frames, expected 0", p.presented)
	}

	// Further frames are no-ops.
	if err := l.Frame(); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if p.polls != 1 {
		t.Errorf("polled %d times, expected 1", p.polls)
	}
}

func TestQuitActionKey(t *testing.T) {
	p := &fakePlatform{batches: [][]core.Event{batch(core.KeyDown(core.ActionQuit))}}
	l := newTestLoop(t, testConfig(), p)

	_ = l.Frame()
	if l.Running() {
		t.Error("ActionQuit key should stop the loop")
	}
}

func TestTurnLatching(t *testing.T) {
	tests := []struct {
		name     string
		events   []core.Event
		expected snake.Direction
	}{
		{
			name:     "perpendicular turn",
			events:   batch(core.KeyDown(core.ActionUp)),
			expected: snake.DirUp,
		},
		{
			name:     "reverse rejected",
			events:   batch(core.KeyDown(core.ActionLeft)),
			expected: snake.DirRight,
		},
		{
			name:     "first turn wins",
			events:   batch(core.KeyDown(core.ActionUp), core.KeyDown(core.ActionDown)),
			expected: snake.DirUp,
		},
		{
			name:     "later turn ignored even if valid from the new heading",
			events:   batch(core.KeyDown(core.ActionUp), core.KeyDown(core.ActionLeft)),
			expected: snake.DirUp,
		},
		{
			name:     "reverse skipped then turn applied",
			events:   batch(core.KeyDown(core.ActionLeft), core.KeyDown(core.ActionDown)),
			expected: snake.DirDown,
		},
		{
			name:     "same direction does not consume the turn",
			events:   batch(core.KeyDown(core.ActionRight), core.KeyDown(core.ActionUp)),
			expected: snake.DirUp,
		},
		{
			name:     "non-direction keys ignored",
			events:   batch(core.KeyDown(core.ActionNone), core.KeyDown(core.ActionDown)),
			expected: snake.DirDown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakePlatform{batches: [][]core.Event{tc.events}}
			l := newTestLoop(t, testConfig(), p)

			if err := l.Frame(); err != nil {
				t.Fatalf("Frame() failed: %v", err)
			}
			if got := l.State().Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEndedGameKeepsPolling(t *testing.T) {
	cfg := testConfig()
	cfg.Sim.InitialLength = 5
	// Up, Left, Down curls the head back into the body.
	p := &fakePlatform{batches: [][]core.Event{
		batch(core.KeyDown(core.ActionUp)),
		batch(core.KeyDown(core.ActionLeft)),
		batch(core.KeyDown(core.ActionDown)),
		batch(core.KeyDown(core.ActionRight)),
		nil,
		batch(core.Quit()),
	}}
	l := newTestLoop(t, cfg, p)

	for i := 0; i < 3; i++ {
		if err := l.Frame(); err != nil {
			t.Fatalf("Frame() failed: %v", err)
		}
	}
	if l.State().Status() != snake.StatusEnded {
		t.Fatalf("Status() = %v, expected ended after curling into the body", l.State().Status())
	}
	if l.State().Outcome() != snake.OutcomeCollision {
		t.Errorf("Outcome() = %v, expected collision", l.State().Outcome())
	}

	ticks := l.State().Ticks()
	dir := l.State().Direction()
	for i := 0; i < 2; i++ {
		if err := l.Frame(); err != nil {
			t.Fatalf("Frame() failed: %v", err)
		}
	}
	if !l.Running() {
		t.Fatal("loop should keep running after game over")
	}
	if l.State().Ticks() != ticks {
		t.Errorf("Ticks() = %d, expected no simulation after game over", l.State().Ticks())
	}
	if l.State().Direction() != dir {
		t.Error("turns should be ignored after game over")
	}
	if p.presented != 5 {
		t.Errorf("presented %d frames, expected 5", p.presented)
	}
	if last := p.titles[len(p.titles)-1]; !strings.HasSuffix(last, "Game Over") {
		t.Errorf("last title = %q, expected game over title", last)
	}

	_ = l.Frame()
	if l.Running() {
		t.Error("quit should still end the loop after game over")
	}
}

func TestTitleOnlySentOnChange(t *testing.T) {
	p := &fakePlatform{}
	l := newTestLoop(t, testConfig(), p)

	for i := 0; i < 4; i++ {
		if err := l.Frame(); err != nil {
			t.Fatalf("Frame() failed: %v", err)
		}
	}

	expected := 1 + l.State().Score()
	if len(p.titles) != expected {
		t.Errorf("SetTitle called %d times, expected %d (%q)", len(p.titles), expected, p.titles)
	}
	if p.titles[len(p.titles)-1] != l.title {
		t.Errorf("title = %q, expected last sent title %q", l.title, p.titles[len(p.titles)-1])
	}
}

func TestRunPacesFrames(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	p := &fakePlatform{batches: [][]core.Event{nil, nil, batch(core.Quit())}}
	p.onPresent = func() { clock.now = clock.now.Add(30 * time.Millisecond) }
	l := newTestLoop(t, testConfig(), p, WithClock(clock))

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(clock.sleeps) != 2 {
		t.Fatalf("slept %d times, expected 2: %v", len(clock.sleeps), clock.sleeps)
	}
	for i, d := range clock.sleeps {
		if d != 95*time.Millisecond {
			t.Errorf("sleep %d = %v, expected 95ms", i, d)
		}
	}
	if l.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", l.Frames())
	}
}

func TestRunSlowFrameDoesNotSleep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	p := &fakePlatform{batches: [][]core.Event{nil, batch(core.Quit())}}
	p.onPresent = func() { clock.now = clock.now.Add(200 * time.Millisecond) }
	l := newTestLoop(t, testConfig(), p, WithClock(clock))

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(clock.sleeps) != 0 {
		t.Errorf("slept %v, expected no sleep after an over-budget frame", clock.sleeps)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	p := &fakePlatform{}
	l := newTestLoop(t, testConfig(), p, WithClock(&fakeClock{now: time.Unix(1, 0)}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v, expected nil on cancel", err)
	}
	if l.Frames() != 0 {
		t.Errorf("Frames() = %d, expected 0", l.Frames())
	}
}

func TestRunReturnsPresentError(t *testing.T) {
	boom := errors.New("boom")
	p := &fakePlatform{presentErr: boom}
	l := newTestLoop(t, testConfig(), p, WithClock(&fakeClock{now: time.Unix(1, 0)}))

	err := l.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("Run() = %v, expected wrapped present error", err)
	}
}

func TestFormatTitle(t *testing.T) {
	if got := FormatTitle("Snake", 3, false); got != "Snake — Score: 3" {
		t.Errorf("FormatTitle() = %q", got)
	}
	if got := FormatTitle("Snake", 7, true); got != "Snake — Score: 7 — Game Over" {
		t.Errorf("FormatTitle() = %q", got)
	}
}
