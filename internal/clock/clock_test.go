package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalTickSource(t *testing.T) {
	genesis := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewIntervalTickSource(genesis, time.Minute)

	tests := []struct {
		name     string
		now      time.Time
		expected uint64
	}{
		{
			name:     "before genesis",
			now:      genesis.Add(-time.Hour),
			expected: 0,
		},
		{
			name:     "at genesis",
			now:      genesis,
			expected: 0,
		},
		{
			name:     "within first interval",
			now:      genesis.Add(59 * time.Second),
			expected: 0,
		},
		{
			name:     "exactly one interval",
			now:      genesis.Add(time.Minute),
			expected: 1,
		},
		{
			name:     "many intervals",
			now:      genesis.Add(90 * time.Minute).Add(30 * time.Second),
			expected: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.now = func() time.Time { return tt.now }
			src.lastTick = 0
			assert.Equal(t, tt.expected, src.CurrentTick())
		})
	}
}

func TestIntervalTickSourceNeverRegresses(t *testing.T) {
	genesis := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewIntervalTickSource(genesis, time.Minute)

	src.now = func() time.Time { return genesis.Add(10 * time.Minute) }
	assert.Equal(t, uint64(10), src.CurrentTick())

	// Wall clock stepped backwards, the tick must hold.
	src.now = func() time.Time { return genesis.Add(7 * time.Minute) }
	assert.Equal(t, uint64(10), src.CurrentTick())

	src.now = func() time.Time { return genesis.Add(11 * time.Minute) }
	assert.Equal(t, uint64(11), src.CurrentTick())
}

func TestManualTickSource(t *testing.T) {
	src := NewManualTickSource(5)
	assert.Equal(t, uint64(5), src.CurrentTick())

	src.Advance(3)
	assert.Equal(t, uint64(8), src.CurrentTick())

	src.SetTick(100)
	assert.Equal(t, uint64(100), src.CurrentTick())
}
