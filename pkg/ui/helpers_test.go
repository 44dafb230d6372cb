package ui

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AndrewRayR/e-ink/pkg/display"
	"github.com/AndrewRayR/e-ink/pkg/input"
	"github.com/AndrewRayR/e-ink/pkg/render"
	"github.com/AndrewRayR/e-ink/pkg/store"
	"github.com/AndrewRayR/e-ink/pkg/weather"
)

// memSurface records frames instead of driving hardware.
type memSurface struct {
	mu       sync.Mutex
	draws    int
	partials int
	slept    bool
	failShow bool
	last     *image.Gray
}

func (m *memSurface) Show(img *image.Gray, partial bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failShow {
		return errors.New("injected display failure")
	}
	m.draws++
	if partial {
		m.partials++
	}
	m.slept = false
	m.last = img
	return nil
}

func (m *memSurface) Clear() error { return nil }

func (m *memSurface) Sleep() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept = true
	return nil
}

func (m *memSurface) Close() error { return nil }

func (m *memSurface) Stats() display.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return display.Stats{Draws: m.draws, Partials: m.partials}
}

func (m *memSurface) snapshot() (draws int, slept bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws, m.slept
}

// fakeFetcher returns a canned report or error.
type fakeFetcher struct {
	report *weather.Report
	err    error
	calls  int
}

func (f *fakeFetcher) Fetch(ctx context.Context, location string) (*weather.Report, error) {
	f.calls++
	return f.report, f.err
}

// scriptKeys replays a fixed key sequence.
type scriptKeys struct {
	mu   sync.Mutex
	keys []input.Key
}

func (s *scriptKeys) push(k input.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, k)
}

func (s *scriptKeys) Poll() (input.Key, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return input.Key{}, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

// testClock is a hand-advanced clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestDeps(t *testing.T) (*Deps, *memSurface, *testClock) {
	t.Helper()
	dir := t.TempDir()
	notes, err := store.OpenNotes(dir)
	require.NoError(t, err)
	settings, err := store.OpenSettings(dir)
	require.NoError(t, err)

	clock := &testClock{now: time.Date(2026, 8, 28, 10, 15, 30, 0, time.UTC)}
	surface := &memSurface{}
	deps := &Deps{
		Surface:  surface,
		Notes:    notes,
		Settings: settings,
		Weather:  &fakeFetcher{err: weather.ErrUnavailable},
		Fonts:    render.LoadFonts(""),
		Now:      clock.Now,
		Started:  clock.Now(),
	}
	return deps, surface, clock
}

// drawFrame exercises a screen's Draw to catch panics and geometry slips.
func drawFrame(s Screen) *render.Frame {
	f := render.New(false)
	s.Draw(f)
	return f
}
