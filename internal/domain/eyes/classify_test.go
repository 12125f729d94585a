package eyes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestClosed_Threshold verifies the step-function boundary behavior,
// including the two reference scenarios around the default cutoff of 15.
func TestClosed_Threshold(t *testing.T) {
	t.Parallel()

	const threshold = 15.0

	// Reference contour with a 10-pixel gap -> closed.
	require.True(t, Closed(LidGap(openishContour()), threshold))

	// Same shape with the gap doubled to 20 -> not closed.
	wide := openishContour()
	wide[1] = Point{X: 0, Y: 20}
	require.False(t, Closed(LidGap(wide), threshold))

	// Boundary: verdict flips strictly below the threshold.
	require.False(t, Closed(threshold, threshold))
	require.True(t, Closed(threshold-1e-9, threshold))
}

// TestBothClosed covers the full truth table of the per-frame signal.
func TestBothClosed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		left, right, want bool
	}{
		{left: false, right: false, want: false},
		{left: false, right: true, want: false},
		{left: true, right: false, want: false},
		{left: true, right: true, want: true},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, BothClosed(tc.left, tc.right))
	}
}
