package replay

import "github.com/younwookim/isoroom/internal/domain/entity"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records the input of a single tick
type FrameInput struct {
	F   int     `json:"f"`             // Frame number
	Dt  float64 `json:"dt"`            // Sanitized tick delta, ms
	Cmd string  `json:"c,omitempty"`   // Held command
	S   bool    `json:"s,omitempty"`   // Spawn
	X   bool    `json:"x,omitempty"`   // Despawn
	P   bool    `json:"p,omitempty"`   // Pause
	HB  bool    `json:"hb,omitempty"`  // ToggleHitbox
	Dst bool    `json:"dst,omitempty"` // ToggleDistance
}

// Input is the decoded input of one tick
type Input struct {
	Command        entity.Command
	Spawn          bool
	Despawn        bool
	Pause          bool
	ToggleHitbox   bool
	ToggleDistance bool
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func encodeFrame(frame int, dt float64, in Input) FrameInput {
	return FrameInput{
		F:   frame,
		Dt:  dt,
		Cmd: string(in.Command),
		S:   in.Spawn,
		X:   in.Despawn,
		P:   in.Pause,
		HB:  in.ToggleHitbox,
		Dst: in.ToggleDistance,
	}
}

func (fi FrameInput) decode() Input {
	return Input{
		Command:        entity.Command(fi.Cmd),
		Spawn:          fi.S,
		Despawn:        fi.X,
		Pause:          fi.P,
		ToggleHitbox:   fi.HB,
		ToggleDistance: fi.Dst,
	}
}
