package monitor

import (
	"context"
	"errors"
	"time"

	"gocv.io/x/gocv"

	"github.com/roadwatch/drowse-monitor/internal/domain/drowsiness"
	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
	"github.com/roadwatch/drowse-monitor/internal/logger"
	repo "github.com/roadwatch/drowse-monitor/internal/repository/session"
	"github.com/roadwatch/drowse-monitor/internal/vision"
)

// Alarm receives lifecycle commands from the pipeline. Implementations must
// be idempotent; the pipeline relies on redundant commands being no-ops.
type Alarm interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context)
}

// pipeline runs the per-frame decision loop. It owns the camera handle and
// the alarm command stream for the lifetime of the loop; everything else it
// touches is injected, so tests replace the external collaborators with
// in-memory fakes.
type pipeline struct {
	// camera supplies frames and terminates the loop when it runs dry.
	camera vision.Camera
	// faces locates face regions in the grayscale frame.
	faces vision.FaceDetector
	// landmarks regresses the 68-point set per face region.
	landmarks vision.LandmarkPredictor
	// alarm is the idempotent playback driver.
	alarm Alarm
	// machine debounces the drowsiness signal into alarm transitions.
	machine *drowsiness.Machine
	// scorer converts an eye contour into a closure score.
	scorer eyes.Scorer
	// threshold is the closed-eye cutoff for the configured metric.
	threshold float64
	// sessions persists the session record, nil to disable persistence.
	sessions repo.Repository
	// session is the current monitoring session record.
	session *drowsiness.Session
	// now supplies timestamps, replaceable in tests.
	now func() time.Time
}

// newPipeline assembles a pipeline around the injected collaborators.
func newPipeline(
	camera vision.Camera,
	faces vision.FaceDetector,
	landmarks vision.LandmarkPredictor,
	alarm Alarm,
	machine *drowsiness.Machine,
	scorer eyes.Scorer,
	threshold float64,
	sessions repo.Repository,
	session *drowsiness.Session,
) *pipeline {
	return &pipeline{
		camera:    camera,
		faces:     faces,
		landmarks: landmarks,
		alarm:     alarm,
		machine:   machine,
		scorer:    scorer,
		threshold: threshold,
		sessions:  sessions,
		session:   session,
		now:       time.Now,
	}
}

// Run processes frames until the camera runs dry or the context is canceled.
// On every exit path the alarm is stopped, the camera released and the
// session finalized, each exactly once.
func (p *pipeline) Run(ctx context.Context) error {
	defer p.shutdown(ctx)

	frame := gocv.NewMat()
	defer frame.Close()

	gray := gocv.NewMat()
	defer gray.Close()

	logger.InfoKV(ctx, "Monitoring started",
		"threshold", p.threshold,
		"alarm_state", p.machine.State().String(),
	)

	for {
		// Cancellation is observed between frames only: a frame in
		// flight is always fully processed.
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Interrupt received, stopping")

			return nil
		default:
		}

		if !p.camera.Read(&frame) {
			logger.Warn(ctx, "Camera stream ended")

			return nil
		}

		p.processFrame(ctx, frame, &gray)
	}
}

// processFrame runs detection and classification for one frame and feeds the
// resulting signal to the state machine. Detection failures skip the frame
// and preserve the alarm state.
func (p *pipeline) processFrame(ctx context.Context, frame gocv.Mat, gray *gocv.Mat) {
	vision.Grayscale(frame, gray)

	faces, err := p.faces.Detect(*gray)
	if err != nil {
		logger.ErrorKV(ctx, "Face detection failed, frame skipped", "error", err)

		return
	}

	// Any face with both eyes closed raises the frame's signal. Zero faces
	// leave it cleared, which the machine treats as state-preserving.
	drowsy := false

	for _, face := range faces {
		landmarks, err := p.landmarks.Predict(*gray, face)
		if err != nil {
			logger.ErrorKV(ctx, "Landmark prediction failed, face skipped", "error", err)

			continue
		}

		signal, err := p.evaluate(landmarks)
		if err != nil {
			if errors.Is(err, eyes.ErrMalformedLandmarks) {
				logger.WarnKV(ctx, "Malformed landmark set, face skipped", "error", err)

				continue
			}

			logger.ErrorKV(ctx, "Eye evaluation failed, face skipped", "error", err)

			continue
		}

		if signal {
			drowsy = true
		}
	}

	p.apply(ctx, drowsy)
}

// evaluate turns one face's landmark set into the drowsiness signal.
func (p *pipeline) evaluate(landmarks eyes.Landmarks) (bool, error) {
	left, err := landmarks.LeftEye()
	if err != nil {
		return false, err
	}

	right, err := landmarks.RightEye()
	if err != nil {
		return false, err
	}

	leftClosed := eyes.Closed(p.scorer(left), p.threshold)
	rightClosed := eyes.Closed(p.scorer(right), p.threshold)

	return eyes.BothClosed(leftClosed, rightClosed), nil
}

// apply feeds the frame's signal to the state machine and issues the
// resulting alarm command.
func (p *pipeline) apply(ctx context.Context, drowsy bool) {
	switch p.machine.Observe(drowsy) {
	case drowsiness.StartAlarm:
		if err := p.alarm.Start(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to start alarm", "error", err)
			// Fall back to silent so the next drowsy frame retries.
			p.machine.Reset()

			return
		}

		p.session.RecordAlarm(p.now())
		logger.WarnKV(ctx, "Drowsiness detected, alarm sounding", "alarm_count", p.session.AlarmCount)
		p.persistSession(ctx)
	case drowsiness.StopAlarm:
		p.alarm.Stop(ctx)
		logger.Info(ctx, "Eyes reopened, alarm cleared")
		p.persistSession(ctx)
	case drowsiness.Hold:
	}
}

// persistSession saves the session record, logging failures without
// interrupting the loop.
func (p *pipeline) persistSession(ctx context.Context) {
	if p.sessions == nil {
		return
	}

	if err := p.sessions.Save(ctx, p.session); err != nil {
		logger.ErrorKV(ctx, "Failed to persist session", "error", err)
	}
}

// shutdown releases the loop-owned resources regardless of exit path.
func (p *pipeline) shutdown(ctx context.Context) {
	p.alarm.Stop(ctx)

	if err := p.camera.Close(); err != nil {
		logger.ErrorKV(ctx, "Failed to release camera", "error", err)
	}

	p.session.Active = false
	p.persistSession(ctx)

	logger.InfoKV(ctx, "Monitoring stopped", "alarm_count", p.session.AlarmCount)
}
