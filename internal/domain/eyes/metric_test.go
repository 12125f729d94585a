package eyes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// openishContour is the reference contour with a 10-pixel lid gap.
func openishContour() Contour {
	return Contour{
		{X: 0, Y: 0},
		{X: 0, Y: 10},
		{X: 1, Y: 9},
		{X: 2, Y: 8},
		{X: 2, Y: 1},
		{X: 1, Y: 0},
	}
}

// TestLidGap_ReferenceContour checks the documented baseline score of 10.0.
func TestLidGap_ReferenceContour(t *testing.T) {
	t.Parallel()

	require.InEpsilon(t, 10.0, LidGap(openishContour()), 1e-9)
}

// TestLidGap_IgnoresRemainingPoints asserts the score depends only on the
// first two points: permuting the rest leaves it unchanged.
func TestLidGap_IgnoresRemainingPoints(t *testing.T) {
	t.Parallel()

	base := openishContour()
	want := LidGap(base)

	permuted := base
	permuted[2], permuted[5] = base[5], base[2]
	permuted[3], permuted[4] = base[4], base[3]

	require.InEpsilon(t, want, LidGap(permuted), 1e-9)
}

// TestAspectRatio_KnownValue checks EAR on a contour with hand-computed distances.
func TestAspectRatio_KnownValue(t *testing.T) {
	t.Parallel()

	// Horizontal span 8, both vertical lid distances 4 -> (4+4)/(2*8) = 0.5.
	contour := Contour{
		{X: 0, Y: 2},
		{X: 2, Y: 4},
		{X: 6, Y: 4},
		{X: 8, Y: 2},
		{X: 6, Y: 0},
		{X: 2, Y: 0},
	}

	require.InEpsilon(t, 0.5, AspectRatio(contour), 1e-9)
}

// TestAspectRatio_DegenerateSpan asserts a zero horizontal span scores zero.
func TestAspectRatio_DegenerateSpan(t *testing.T) {
	t.Parallel()

	var collapsed Contour
	require.Zero(t, AspectRatio(collapsed))
}

// TestAspectRatio_ScaleInvariant checks the ratio survives uniform scaling.
func TestAspectRatio_ScaleInvariant(t *testing.T) {
	t.Parallel()

	base := openishContour()
	want := AspectRatio(base)

	scaled := base
	for i := range scaled {
		scaled[i].X *= 7
		scaled[i].Y *= 7
	}

	require.InEpsilon(t, want, AspectRatio(scaled), 1e-9)
}
