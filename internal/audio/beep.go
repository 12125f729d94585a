package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// speakerBufferLength sizes the speaker buffer; short enough that a stop
// command is audible almost immediately.
const speakerBufferLength = time.Second / 10

var (
	// errNoTrackLoaded is returned when playback is requested before Load.
	errNoTrackLoaded = errors.New("no track loaded")
	// errUnsupportedFormat is returned for audio files that are neither MP3 nor WAV.
	errUnsupportedFormat = errors.New("unsupported audio format")
)

// BeepEngine plays the alarm track through the system speaker using beep.
// It decodes the whole track once at Load and loops it from the start on
// every PlayLooped call.
type BeepEngine struct {
	// streamer decodes samples from the open track file and owns its handle.
	streamer beep.StreamSeekCloser
}

// NewBeepEngine creates an engine with no track loaded.
func NewBeepEngine() *BeepEngine {
	return &BeepEngine{}
}

// Load opens and decodes the track, then initializes the speaker at the
// track's native sample rate. Supported formats: MP3 and WAV.
func (e *BeepEngine) Load(path string) error {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		_ = file.Close()

		return fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}

	if err != nil {
		_ = file.Close()

		return fmt.Errorf("decode track: %w", err)
	}

	if err = speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLength)); err != nil {
		_ = streamer.Close()

		return fmt.Errorf("initialise speaker: %w", err)
	}

	e.streamer = streamer

	return nil
}

// PlayLooped rewinds the track and plays it in an endless loop.
func (e *BeepEngine) PlayLooped() error {
	if e.streamer == nil {
		return errNoTrackLoaded
	}

	if err := e.streamer.Seek(0); err != nil {
		return fmt.Errorf("rewind track: %w", err)
	}

	speaker.Play(beep.Loop(-1, e.streamer))

	return nil
}

// Stop drains the speaker, halting playback without closing the track.
func (e *BeepEngine) Stop() {
	if e.streamer == nil {
		return
	}

	speaker.Clear()
}

// Close releases the decoded track and its file handle.
func (e *BeepEngine) Close() error {
	if e.streamer == nil {
		return nil
	}

	speaker.Clear()

	err := e.streamer.Close()
	e.streamer = nil

	if err != nil {
		return fmt.Errorf("close track: %w", err)
	}

	return nil
}
