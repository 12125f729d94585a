package eyes

import (
	"errors"
	"fmt"
	"math"
)

// Point is a 2D coordinate in image pixel space.
type Point struct {
	// X is the horizontal pixel coordinate.
	X float64
	// Y is the vertical pixel coordinate.
	Y float64
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

const (
	// LandmarkCount is the number of points in the standard facial scheme.
	LandmarkCount = 68
	// ContourLength is the number of points describing one eye's outline.
	ContourLength = 6

	// leftEyeStart is the first landmark index of the left eye contour.
	leftEyeStart = 36
	// rightEyeStart is the first landmark index of the right eye contour.
	rightEyeStart = 42
)

// ErrMalformedLandmarks is returned when a landmark set has fewer points
// than the standard 68-point scheme requires.
var ErrMalformedLandmarks = errors.New("malformed landmark set")

// Landmarks is a full facial landmark set indexed by the standard scheme.
type Landmarks []Point

// Contour is one eye's outline in fixed anatomical order. It is not a
// closed loop: the first two points span the eyelid gap at the inner corner.
type Contour [ContourLength]Point

// LeftEye isolates the left eye contour (landmarks 36-41, ascending).
func (l Landmarks) LeftEye() (Contour, error) {
	return l.contourAt(leftEyeStart)
}

// RightEye isolates the right eye contour (landmarks 42-47, ascending).
func (l Landmarks) RightEye() (Contour, error) {
	return l.contourAt(rightEyeStart)
}

// contourAt copies ContourLength points starting at the given landmark index.
func (l Landmarks) contourAt(start int) (Contour, error) {
	var contour Contour

	if len(l) < LandmarkCount {
		return contour, fmt.Errorf("%w: got %d points, want %d", ErrMalformedLandmarks, len(l), LandmarkCount)
	}

	copy(contour[:], l[start:start+ContourLength])

	return contour, nil
}
