package vision

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Webcam captures frames from a local video device via OpenCV.
type Webcam struct {
	// capture is the underlying OpenCV capture handle.
	capture *gocv.VideoCapture
}

// OpenWebcam opens the capture device with the given index.
func OpenWebcam(device int) (*Webcam, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open capture device %d: %w", device, err)
	}

	return &Webcam{capture: capture}, nil
}

// Read fills dst with the next frame. A false result signals end of stream
// or a device failure and is the pipeline's termination condition.
func (w *Webcam) Read(dst *gocv.Mat) bool {
	if !w.capture.Read(dst) {
		return false
	}

	return !dst.Empty()
}

// Close releases the capture device.
func (w *Webcam) Close() error {
	if err := w.capture.Close(); err != nil {
		return fmt.Errorf("close capture device: %w", err)
	}

	return nil
}
