// Package calibrate samples open-eye closure scores from the live camera
// and suggests a closed-eye threshold matched to the operator's camera
// placement and resolution.
package calibrate
