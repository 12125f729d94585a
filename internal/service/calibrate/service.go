package calibrate

import (
	"context"
	"errors"
	"math"

	"gocv.io/x/gocv"

	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
	"github.com/roadwatch/drowse-monitor/internal/logger"
	"github.com/roadwatch/drowse-monitor/internal/vision"
)

// suggestionFactor places the suggested cutoff below the observed mean
// open-eye score, leaving headroom for blink noise.
const suggestionFactor = 0.75

// errNoSamples is returned when no face was scored during the sampling window.
var errNoSamples = errors.New("no closure samples collected")

// Report summarizes one calibration run.
type Report struct {
	// Samples is the number of per-eye scores collected.
	Samples int
	// Min is the smallest observed score.
	Min float64
	// Mean is the average observed score.
	Mean float64
	// Max is the largest observed score.
	Max float64
	// Suggested is the recommended closed-eye cutoff.
	Suggested float64
}

// sampler collects per-eye closure scores from live frames. The operator is
// expected to keep their eyes open for the whole window, so the scores
// describe this camera's open-eye distribution.
type sampler struct {
	// camera supplies frames.
	camera vision.Camera
	// faces locates face regions.
	faces vision.FaceDetector
	// landmarks regresses the 68-point set per face.
	landmarks vision.LandmarkPredictor
	// scorer converts eye contours into closure scores.
	scorer eyes.Scorer
}

// newSampler assembles a sampler around the injected collaborators.
func newSampler(
	camera vision.Camera,
	faces vision.FaceDetector,
	landmarks vision.LandmarkPredictor,
	scorer eyes.Scorer,
) *sampler {
	return &sampler{
		camera:    camera,
		faces:     faces,
		landmarks: landmarks,
		scorer:    scorer,
	}
}

// Run samples until the context deadline passes or the camera stream ends,
// then reduces the scores into a Report. The camera is released on every
// exit path.
func (s *sampler) Run(ctx context.Context) (*Report, error) {
	defer func() {
		if err := s.camera.Close(); err != nil {
			logger.ErrorKV(ctx, "Failed to release camera", "error", err)
		}
	}()

	frame := gocv.NewMat()
	defer frame.Close()

	gray := gocv.NewMat()
	defer gray.Close()

	var scores []float64

	for {
		select {
		case <-ctx.Done():
			return reduce(scores)
		default:
		}

		if !s.camera.Read(&frame) {
			logger.Warn(ctx, "Camera stream ended")

			return reduce(scores)
		}

		scores = s.sampleFrame(ctx, frame, &gray, scores)
	}
}

// sampleFrame scores every eye of every face in one frame, reusing the
// pipeline's skip-and-log semantics for detection failures.
func (s *sampler) sampleFrame(ctx context.Context, frame gocv.Mat, gray *gocv.Mat, scores []float64) []float64 {
	vision.Grayscale(frame, gray)

	faces, err := s.faces.Detect(*gray)
	if err != nil {
		logger.ErrorKV(ctx, "Face detection failed, frame skipped", "error", err)

		return scores
	}

	for _, face := range faces {
		landmarks, err := s.landmarks.Predict(*gray, face)
		if err != nil {
			logger.ErrorKV(ctx, "Landmark prediction failed, face skipped", "error", err)

			continue
		}

		left, err := landmarks.LeftEye()
		if err != nil {
			logger.WarnKV(ctx, "Malformed landmark set, face skipped", "error", err)

			continue
		}

		// RightEye validates the same length precondition as LeftEye.
		right, _ := landmarks.RightEye()

		scores = append(scores, s.scorer(left), s.scorer(right))
	}

	return scores
}

// reduce folds collected scores into a calibration report.
func reduce(scores []float64) (*Report, error) {
	if len(scores) == 0 {
		return nil, errNoSamples
	}

	report := &Report{
		Samples: len(scores),
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
	}

	var sum float64

	for _, score := range scores {
		sum += score
		report.Min = math.Min(report.Min, score)
		report.Max = math.Max(report.Max, score)
	}

	report.Mean = sum / float64(len(scores))
	report.Suggested = report.Mean * suggestionFactor

	return report, nil
}
