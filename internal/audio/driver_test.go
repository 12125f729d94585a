package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
)

var errTestPlayback = errors.New("test playback error")

// fakeEngine is a minimal in-memory Engine implementation for tests.
type fakeEngine struct {
	// playCalls counts PlayLooped invocations.
	playCalls int
	// stopCalls counts Stop invocations.
	stopCalls int
	// playErr is the error to return from PlayLooped.
	playErr error
}

// Load is a no-op for the fake engine.
func (f *fakeEngine) Load(string) error { return nil }

// PlayLooped records the call and returns the configured error.
func (f *fakeEngine) PlayLooped() error {
	f.playCalls++

	return f.playErr
}

// Stop records the call.
func (f *fakeEngine) Stop() {
	f.stopCalls++
}

// TestDriver_StartIdempotent asserts redundant starts issue one playback command.
func TestDriver_StartIdempotent(t *testing.T) {
	t.Parallel()

	engine := new(fakeEngine)
	driver := NewDriver(engine)
	require.Equal(t, drowsiness.Silent, driver.State())

	require.NoError(t, driver.Start(context.Background()))
	require.NoError(t, driver.Start(context.Background()))

	require.Equal(t, 1, engine.playCalls)
	require.Equal(t, drowsiness.Sounding, driver.State())
}

// TestDriver_StopIdempotent asserts stop is a no-op while silent and halts
// playback exactly once while sounding.
func TestDriver_StopIdempotent(t *testing.T) {
	t.Parallel()

	engine := new(fakeEngine)
	driver := NewDriver(engine)

	// Stop while silent: no engine command.
	driver.Stop(context.Background())
	require.Zero(t, engine.stopCalls)

	require.NoError(t, driver.Start(context.Background()))

	driver.Stop(context.Background())
	driver.Stop(context.Background())

	require.Equal(t, 1, engine.stopCalls)
	require.Equal(t, drowsiness.Silent, driver.State())
}

// TestDriver_StartFailureStaysSilent asserts a failed playback start leaves
// the state untouched so a later retry can succeed.
func TestDriver_StartFailureStaysSilent(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{playErr: errTestPlayback}
	driver := NewDriver(engine)

	err := driver.Start(context.Background())
	require.ErrorIs(t, err, errTestPlayback)
	require.Equal(t, drowsiness.Silent, driver.State())

	// Retry after the engine recovers.
	engine.playErr = nil
	require.NoError(t, driver.Start(context.Background()))
	require.Equal(t, drowsiness.Sounding, driver.State())
}
