package audio

import (
	"context"
	"fmt"
	"sync"

	"github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
	"github.com/roadwatch/drowse-monitor/internal/logger"
)

// Engine abstracts the audio playback backend the alarm is played through.
type Engine interface {
	// Load prepares the track at the given path for playback.
	Load(path string) error
	// PlayLooped starts continuous looped playback of the loaded track.
	PlayLooped() error
	// Stop halts playback.
	Stop()
}

// Driver manages the alarm playback lifecycle over an Engine. Both Start and
// Stop are idempotent: redundant commands are no-ops, so the driver is never
// asked to restart an already sounding alarm or silence a silent one. The
// driver owns no audio resources beyond the state flag.
type Driver struct {
	// engine is the playback backend.
	engine Engine
	// mu protects the alarm state flag.
	mu sync.Mutex
	// state is the current alarm status, Silent at startup.
	state drowsiness.AlarmState
}

// NewDriver wraps an audio engine in an idempotent alarm driver.
func NewDriver(engine Engine) *Driver {
	return &Driver{
		engine: engine,
		state:  drowsiness.Silent,
	}
}

// Start begins looped playback if the alarm is silent, no-op otherwise.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == drowsiness.Sounding {
		return nil
	}

	if err := d.engine.PlayLooped(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}

	d.state = drowsiness.Sounding
	logger.Warn(ctx, "Alarm started")

	return nil
}

// Stop halts playback if the alarm is sounding, no-op otherwise.
func (d *Driver) Stop(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == drowsiness.Silent {
		return
	}

	d.engine.Stop()
	d.state = drowsiness.Silent
	logger.Info(ctx, "Alarm stopped")
}

// State returns the current alarm status.
func (d *Driver) State() drowsiness.AlarmState {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}
