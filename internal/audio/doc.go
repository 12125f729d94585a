// Package audio contains the alarm driver and the playback backends it
// commands.
//
// The Driver holds the single source of truth for the alarm state and keeps
// start/stop idempotent. BeepEngine is the real backend, playing a looped
// MP3 or WAV track through the system speaker.
package audio
