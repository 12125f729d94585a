// Package vision adapts the external computer-vision collaborators behind
// narrow interfaces: camera capture, Haar-cascade face detection and DNN
// landmark regression, all backed by OpenCV through gocv.
//
// The monitor service depends only on the interfaces so every adapter can be
// substituted with a fake in tests.
package vision
