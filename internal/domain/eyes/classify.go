package eyes

// Closed reports whether a closure score classifies the eye as closed
// under the given threshold. The verdict is a step function of the score:
// closed strictly below the threshold, open at or above it.
func Closed(score, threshold float64) bool {
	return score < threshold
}

// BothClosed combines two per-eye verdicts into the per-frame drowsiness
// signal, which is raised only when both eyes are closed at once.
func BothClosed(left, right bool) bool {
	return left && right
}
