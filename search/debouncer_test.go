package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
	at      []time.Time
}

func (r *recorder) fire(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
	r.at = append(r.at, time.Now())
}

func (r *recorder) snapshot() ([]string, []time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...), append([]time.Time(nil), r.at...)
}

// keystrokes at 0, 20, 30 and 80ms against a 100ms quiet period
func TestDebouncer_BurstFiresOnceAfterLastKeystroke(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(100*time.Millisecond, 2, rec.fire)

	start := time.Now()
	d.Input("ro")
	time.Sleep(20 * time.Millisecond)
	d.Input("roo")
	time.Sleep(10 * time.Millisecond)
	d.Input("roof")
	time.Sleep(50 * time.Millisecond)
	last := time.Now()
	d.Input("rooftop")

	time.Sleep(350 * time.Millisecond)

	queries, at := rec.snapshot()
	require.Equal(t, []string{"rooftop"}, queries)
	assert.GreaterOrEqual(t, at[0].Sub(last), 100*time.Millisecond)
	assert.GreaterOrEqual(t, at[0].Sub(start), 180*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestDebouncer_ShortQueryCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, 2, rec.fire)

	d.Input("jazz")
	d.Input("j")

	time.Sleep(100 * time.Millisecond)

	queries, _ := rec.snapshot()
	assert.Empty(t, queries)
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, 2, rec.fire)

	d.Input("afro")
	time.Sleep(80 * time.Millisecond)
	d.Input("  salsa  ")
	time.Sleep(80 * time.Millisecond)

	queries, _ := rec.snapshot()
	assert.Equal(t, []string{"afro", "salsa"}, queries)
}

func TestDebouncer_StopIgnoresInput(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, 2, rec.fire)

	d.Input("house")
	d.Stop()
	d.Input("techno")

	time.Sleep(80 * time.Millisecond)

	queries, _ := rec.snapshot()
	assert.Empty(t, queries)
	assert.False(t, d.Pending())
}

func TestNewDebouncer_Defaults(t *testing.T) {
	d := NewDebouncer(0, 0, func(string) {})

	assert.Equal(t, DefaultDelay, d.delay)
	assert.Equal(t, DefaultMinQueryLength, d.minLen)
}
