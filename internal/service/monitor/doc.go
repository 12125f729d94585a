// Package monitor implements the frame pipeline: it pulls frames from the
// camera, runs face detection and landmark regression, classifies eye
// closure and drives the alarm through the drowsiness state machine.
//
// Run wires the real OpenCV and speaker collaborators; the pipeline itself
// depends only on interfaces and is exercised with fakes in tests.
package monitor
