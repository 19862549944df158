package clock

import (
	"sync"
	"time"
)

// TickSource reports the current ledger tick. Ticks start at 0 and only move
// forward.
type TickSource interface {
	CurrentTick() uint64
}

// IntervalTickSource derives the current tick from wall clock time: tick N
// covers the half-open interval [genesis + N*interval, genesis + (N+1)*interval).
// Reads are guarded so a wall clock step backwards can never make the tick
// counter regress.
type IntervalTickSource struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastTick uint64
}

func NewIntervalTickSource(genesis time.Time, interval time.Duration) *IntervalTickSource {
	return &IntervalTickSource{
		genesis:  genesis,
		interval: interval,
		now:      time.Now,
	}
}

func (s *IntervalTickSource) CurrentTick() uint64 {
	elapsed := s.now().Sub(s.genesis)
	var tick uint64
	if elapsed > 0 {
		tick = uint64(elapsed / s.interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tick < s.lastTick {
		return s.lastTick
	}
	s.lastTick = tick
	return tick
}

// ManualTickSource is a TickSource driven by explicit Advance calls, used in
// tests to step through unbonding and settlement windows.
type ManualTickSource struct {
	mu   sync.Mutex
	tick uint64
}

func NewManualTickSource(tick uint64) *ManualTickSource {
	return &ManualTickSource{tick: tick}
}

func (s *ManualTickSource) CurrentTick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

func (s *ManualTickSource) SetTick(tick uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick = tick
}

func (s *ManualTickSource) Advance(ticks uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick += ticks
}
