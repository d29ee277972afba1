package decomposition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_RecordAccumulatesCountAndTime(t *testing.T) {
	s := NewStats()
	s.record("one_sum", 5*time.Millisecond)
	s.record("one_sum", 3*time.Millisecond)
	s.record("r10", time.Millisecond)

	assert.Equal(t, 2, s.Count("one_sum"))
	assert.Equal(t, 8*time.Millisecond, s.Time("one_sum"))
	assert.Equal(t, 1, s.Count("r10"))
	assert.Equal(t, 0, s.Count("never_ran"))
}

func TestStats_RecordTotalBracketsPumpLoop(t *testing.T) {
	s := NewStats()
	s.recordTotal(10 * time.Millisecond)
	s.recordTotal(5 * time.Millisecond)

	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 15*time.Millisecond, s.TotalTime)
}

func TestStats_NilReceiverIsNoOp(t *testing.T) {
	var s *Stats
	assert.NotPanics(t, func() {
		s.record("x", time.Millisecond)
		s.recordTotal(time.Millisecond)
	})
	assert.Equal(t, 0, s.Count("x"))
	assert.Equal(t, time.Duration(0), s.Time("x"))
	assert.Equal(t, "total=0 time=0s", s.String())
}

func TestStats_StringIncludesStageBreakdown(t *testing.T) {
	s := NewStats()
	s.record("one_sum", time.Millisecond)
	s.recordTotal(time.Millisecond)

	assert.Contains(t, s.String(), "one_sum=1(1ms)")
	assert.Contains(t, s.String(), "total=1")
}
