package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Replayer feeds recorded input back one tick at a time
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Decode reads replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("replay version %q, want %q", data.Version, Version)
	}
	return &data, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Next returns the input and delta of the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (in Input, dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return Input{}, 0, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.decode(), fi.Dt, true
}

// Done reports whether playback has finished
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the scene the replay was recorded in
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Session returns the recorded session ID
func (r *Replayer) Session() string {
	return r.data.Session
}

// Reset rewinds to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
}
