package drowsiness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMachine_StartsOnce asserts consecutive drowsy frames produce exactly
// one start command.
func TestMachine_StartsOnce(t *testing.T) {
	t.Parallel()

	m := NewMachine(false)
	require.Equal(t, Silent, m.State())

	require.Equal(t, StartAlarm, m.Observe(true))
	require.Equal(t, Sounding, m.State())

	// Second drowsy frame must not reissue the start.
	require.Equal(t, Hold, m.Observe(true))
	require.Equal(t, Sounding, m.State())
}

// TestMachine_Latch verifies the default one-way behavior: once sounding,
// a cleared signal does not silence the alarm.
func TestMachine_Latch(t *testing.T) {
	t.Parallel()

	m := NewMachine(false)
	m.Observe(true)

	require.Equal(t, Hold, m.Observe(false))
	require.Equal(t, Sounding, m.State())
}

// TestMachine_AutoReset verifies the two-way mode stops the alarm when the
// signal clears and can re-trigger afterwards.
func TestMachine_AutoReset(t *testing.T) {
	t.Parallel()

	m := NewMachine(true)

	require.Equal(t, StartAlarm, m.Observe(true))
	require.Equal(t, StopAlarm, m.Observe(false))
	require.Equal(t, Silent, m.State())

	// Re-trigger after reset.
	require.Equal(t, StartAlarm, m.Observe(true))
}

// TestMachine_ClearSignalWhileSilent asserts frames without drowsiness,
// including no-face frames reported as a cleared signal, change nothing.
func TestMachine_ClearSignalWhileSilent(t *testing.T) {
	t.Parallel()

	for _, autoReset := range []bool{false, true} {
		m := NewMachine(autoReset)

		require.Equal(t, Hold, m.Observe(false))
		require.Equal(t, Hold, m.Observe(false))
		require.Equal(t, Silent, m.State())
	}
}

// TestMachine_Reset checks teardown returns the machine to Silent silently.
func TestMachine_Reset(t *testing.T) {
	t.Parallel()

	m := NewMachine(false)
	m.Observe(true)

	m.Reset()
	require.Equal(t, Silent, m.State())
}

// TestAlarmStateString covers log formatting of states.
func TestAlarmStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "silent", Silent.String())
	require.Equal(t, "sounding", Sounding.String())
	require.Equal(t, "unknown", AlarmState(42).String())
}
