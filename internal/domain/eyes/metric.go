package eyes

// Scorer converts an eye contour into a closure score.
// Smaller scores mean a more closed eye.
type Scorer func(Contour) float64

// LidGap scores closure as the Euclidean distance between the contour's
// first two points. It is a coarse proxy for the vertical eyelid gap that
// inspects only two of the six available points; AspectRatio is the
// recommended replacement when literal baseline behavior is not required.
func LidGap(c Contour) float64 {
	return c[0].DistanceTo(c[1])
}

// AspectRatio scores closure as the eye aspect ratio: the mean of the two
// vertical lid distances over the horizontal corner span. The ratio is
// invariant to head scale and tolerant of mild tilt. A degenerate contour
// with no horizontal span scores zero.
func AspectRatio(c Contour) float64 {
	span := c[0].DistanceTo(c[3])
	if span == 0 {
		return 0
	}

	vertical := c[1].DistanceTo(c[5]) + c[2].DistanceTo(c[4])

	return vertical / (2 * span)
}
