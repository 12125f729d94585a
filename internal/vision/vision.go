package vision

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
)

// Camera supplies video frames.
type Camera interface {
	// Read fills dst with the next frame, reporting false at end of stream
	// or on device failure.
	Read(dst *gocv.Mat) bool
	// Close releases the capture device.
	Close() error
}

// FaceDetector locates faces in a grayscale frame. An empty result means no
// face was found and is not an error.
type FaceDetector interface {
	Detect(gray gocv.Mat) ([]image.Rectangle, error)
	Close() error
}

// LandmarkPredictor regresses the 68-point landmark set for one face region
// of a grayscale frame.
type LandmarkPredictor interface {
	Predict(gray gocv.Mat, face image.Rectangle) (eyes.Landmarks, error)
	Close() error
}

// Grayscale converts a BGR capture frame into the single-channel image the
// detectors consume.
func Grayscale(src gocv.Mat, dst *gocv.Mat) {
	gocv.CvtColor(src, dst, gocv.ColorBGRToGray)
}
