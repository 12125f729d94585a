package eyes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fullLandmarks builds a 68-point set where every point encodes its own index,
// making extracted contours easy to assert on.
func fullLandmarks() Landmarks {
	landmarks := make(Landmarks, LandmarkCount)
	for i := range landmarks {
		landmarks[i] = Point{X: float64(i), Y: float64(i * 2)}
	}

	return landmarks
}

// TestLeftEye verifies the left contour covers landmarks 36-41 in ascending order.
func TestLeftEye(t *testing.T) {
	t.Parallel()

	contour, err := fullLandmarks().LeftEye()
	require.NoError(t, err)

	for i, p := range contour {
		require.InEpsilon(t, float64(36+i), p.X, 1e-9)
		require.InEpsilon(t, float64((36+i)*2), p.Y, 1e-9)
	}
}

// TestRightEye verifies the right contour covers landmarks 42-47 in ascending order.
func TestRightEye(t *testing.T) {
	t.Parallel()

	contour, err := fullLandmarks().RightEye()
	require.NoError(t, err)

	for i, p := range contour {
		require.InEpsilon(t, float64(42+i), p.X, 1e-9)
	}
}

// TestMalformedLandmarks asserts both extractors reject short landmark sets.
func TestMalformedLandmarks(t *testing.T) {
	t.Parallel()

	short := fullLandmarks()[:LandmarkCount-1]

	_, err := short.LeftEye()
	require.ErrorIs(t, err, ErrMalformedLandmarks)

	_, err = short.RightEye()
	require.ErrorIs(t, err, ErrMalformedLandmarks)

	_, err = Landmarks(nil).LeftEye()
	require.ErrorIs(t, err, ErrMalformedLandmarks)
}

// TestDistanceTo checks the Euclidean distance helper on a 3-4-5 triangle.
func TestDistanceTo(t *testing.T) {
	t.Parallel()

	require.InEpsilon(t, 5.0, Point{X: 0, Y: 0}.DistanceTo(Point{X: 3, Y: 4}), 1e-9)
}
