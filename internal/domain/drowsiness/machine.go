package drowsiness

// AlarmState is the process-wide alarm status.
type AlarmState int

const (
	// Silent means no alarm playback is active.
	Silent AlarmState = iota
	// Sounding means looped alarm playback is active.
	Sounding
)

// String returns a human-readable state name for logging.
func (s AlarmState) String() string {
	switch s {
	case Silent:
		return "silent"
	case Sounding:
		return "sounding"
	default:
		return "unknown"
	}
}

// Command is the alarm lifecycle action a frame observation produces.
type Command int

const (
	// Hold means the alarm state is unchanged and no command is issued.
	Hold Command = iota
	// StartAlarm means playback must begin.
	StartAlarm
	// StopAlarm means playback must halt.
	StopAlarm
)

// Machine debounces the per-frame drowsiness signal into alarm transitions.
// It is the single writer of the alarm state: consumers issue exactly the
// commands it returns and nothing else.
//
// In latch mode (the default) a triggered alarm never stops on its own, so
// the eyes reopening produces Hold. Auto-reset mode silences the alarm as
// soon as the signal clears.
type Machine struct {
	// state is the current alarm status.
	state AlarmState
	// autoReset enables the Sounding -> Silent transition on a clear signal.
	autoReset bool
}

// NewMachine creates a machine in the Silent state.
func NewMachine(autoReset bool) *Machine {
	return &Machine{
		state:     Silent,
		autoReset: autoReset,
	}
}

// State returns the current alarm status.
func (m *Machine) State() AlarmState {
	return m.state
}

// Observe consumes one frame's drowsiness signal and returns the command to
// issue. A raised signal while Silent transitions to Sounding and commands
// a start exactly once; repeating the signal holds. A cleared signal holds
// in latch mode and stops the alarm in auto-reset mode. Frames with no face
// or with a failed detection must be reported as a cleared signal by the
// caller, which preserves the current state.
func (m *Machine) Observe(drowsy bool) Command {
	switch {
	case drowsy && m.state == Silent:
		m.state = Sounding

		return StartAlarm
	case !drowsy && m.state == Sounding && m.autoReset:
		m.state = Silent

		return StopAlarm
	default:
		return Hold
	}
}

// Reset forces the machine back to Silent without emitting a command.
// The pipeline uses it when starting playback failed, so the next drowsy
// frame produces a fresh start command instead of holding in Sounding.
func (m *Machine) Reset() {
	m.state = Silent
}
