// Package eyes contains the geometric core of the monitor: facial landmark
// types, eye contour extraction, closure scoring and the per-frame
// open/closed classification.
//
// Everything here is pure and frame-scoped; temporal behavior lives in the
// drowsiness package.
package eyes
