package drowsiness

import "time"

// Session records one monitoring run for operator review: when it started,
// how many times the alarm fired and when it fired last.
type Session struct {
	// StartedAt is when the monitoring loop began.
	StartedAt time.Time `json:"started_at"`
	// AlarmCount is how many times the alarm has been triggered.
	AlarmCount int `json:"alarm_count"`
	// LastAlarmAt is the most recent alarm trigger time, zero if none.
	// Always serialized: the zero timestamp marks an alarm-free session.
	LastAlarmAt time.Time `json:"last_alarm_at"`
	// Active reports whether the session is still running. It is cleared
	// during shutdown so a stale file is distinguishable from a live run.
	Active bool `json:"active"`
}

// NewSession starts a session record at the given time.
func NewSession(startedAt time.Time) *Session {
	return &Session{
		StartedAt: startedAt,
		Active:    true,
	}
}

// RecordAlarm notes one alarm trigger at the given time.
func (s *Session) RecordAlarm(at time.Time) {
	s.AlarmCount++
	s.LastAlarmAt = at
}

// Clone returns a copy of the session to avoid leaking internal references.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	cloned := *s

	return &cloned
}
