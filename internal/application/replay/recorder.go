package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder captures per-tick input for later playback
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder starts a recording of the named scene under a fresh session ID
func NewRecorder(scene string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Session:   uuid.NewString(),
			Scene:     scene,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 1024),
		},
		recording: true,
	}
}

// RecordFrame appends the input of one tick. dt is the sanitized delta
// the tick was simulated with.
func (r *Recorder) RecordFrame(dt float64, in Input) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, encodeFrame(r.frame, dt, in))
	r.frame++
}

// Write encodes the recording as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return r.Write(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Session returns the session ID
func (r *Recorder) Session() string {
	return r.data.Session
}

// Data returns a copy of the recorded data
func (r *Recorder) Data() ReplayData {
	d := r.data
	d.Frames = append([]FrameInput(nil), r.data.Frames...)
	return d
}

// GenerateFilename creates a filename from the scene and current time
func GenerateFilename(scene string) string {
	return fmt.Sprintf("replay_%s_%s.json", scene, time.Now().Format("20060102_150405"))
}
