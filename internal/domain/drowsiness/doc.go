// Package drowsiness contains the temporal core of the monitor: the state
// machine that turns the per-frame drowsiness signal into idempotent alarm
// start/stop transitions.
package drowsiness
