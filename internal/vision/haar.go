package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// errEmptyFrame is returned when a detector receives an empty matrix.
var errEmptyFrame = errors.New("empty frame")

// HaarFaceDetector finds frontal faces with an OpenCV Haar cascade.
type HaarFaceDetector struct {
	// classifier is the loaded cascade.
	classifier gocv.CascadeClassifier
}

// NewHaarFaceDetector loads the cascade definition from the given XML file.
func NewHaarFaceDetector(cascadePath string) (*HaarFaceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		_ = classifier.Close()

		return nil, fmt.Errorf("load face cascade %q", cascadePath)
	}

	return &HaarFaceDetector{classifier: classifier}, nil
}

// Detect returns the bounding rectangles of all faces in the grayscale frame.
func (d *HaarFaceDetector) Detect(gray gocv.Mat) ([]image.Rectangle, error) {
	if gray.Empty() {
		return nil, errEmptyFrame
	}

	return d.classifier.DetectMultiScale(gray), nil
}

// Close releases the cascade.
func (d *HaarFaceDetector) Close() error {
	if err := d.classifier.Close(); err != nil {
		return fmt.Errorf("close face cascade: %w", err)
	}

	return nil
}
