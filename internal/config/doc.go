// Package config defines runtime settings used by the monitor binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds camera and model file locations, the closure metric
// selection with its thresholds, and the alarm latch behavior.
package config
