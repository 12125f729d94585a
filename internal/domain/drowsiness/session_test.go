package drowsiness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestSessionRecordAlarm verifies alarm accounting on the session record.
func TestSessionRecordAlarm(t *testing.T) {
	t.Parallel()

	started := time.Unix(500, 0)
	s := NewSession(started)
	require.True(t, s.Active)
	require.Zero(t, s.AlarmCount)
	require.True(t, s.LastAlarmAt.IsZero())

	first := started.Add(time.Minute)
	s.RecordAlarm(first)
	s.RecordAlarm(first.Add(time.Minute))

	require.Equal(t, 2, s.AlarmCount)
	require.Equal(t, first.Add(time.Minute), s.LastAlarmAt)
}

// TestSessionClone verifies Clone returns an independent copy and handles nil safely.
func TestSessionClone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Session)(nil).Clone())

	s := NewSession(time.Unix(500, 0))
	s.RecordAlarm(time.Unix(600, 0))

	c := s.Clone()
	require.Equal(t, s, c)
	require.NotSame(t, s, c)

	c.RecordAlarm(time.Unix(700, 0))
	require.Equal(t, 1, s.AlarmCount)
}
