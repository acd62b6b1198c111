package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Built-in cue names. Scenes may name any cue; unknown names fall
// back to CueClick when no file provides them.
const (
	CueDoor  = "door"
	CueGrab  = "grab"
	CuePaper = "paper"
	CueWoosh = "woosh"
	CueClick = "click"
)

// noise is a small LCG white-noise source, deterministic per seed
type noise struct {
	state uint32
}

func (n *noise) next() float64 {
	n.state = n.state*1103515245 + 12345
	return float64(n.state&0x7fffffff)/float64(0x7fffffff)*2 - 1
}

// cueGenerator synthesizes one procedural cue
type cueGenerator struct {
	sr     beep.SampleRate
	pos    int
	sample func(t float64, n *noise) float64
	noise  noise
}

func (g *cueGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		s := g.sample(t, &g.noise)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *cueGenerator) Err() error {
	return nil
}

// cueSpec is a synthesized cue: its length and per-sample function
type cueSpec struct {
	length time.Duration
	sample func(t float64, n *noise) float64
}

var builtinCues = map[string]cueSpec{
	// low thump followed by a short creak
	CueDoor: {400 * time.Millisecond, func(t float64, n *noise) float64 {
		thump := 0.5 * math.Exp(-t*25) * math.Sin(2*math.Pi*70*t)
		creakFreq := 300 + 200*math.Sin(2*math.Pi*3*t)
		creak := 0.12 * math.Exp(-math.Abs(t-0.2)*12) * math.Sin(2*math.Pi*creakFreq*t)
		return thump + creak
	}},
	// short bright noise burst
	CueGrab: {150 * time.Millisecond, func(t float64, n *noise) float64 {
		return 0.35 * math.Exp(-t*40) * (0.6*n.next() + 0.4*math.Sin(2*math.Pi*900*t))
	}},
	// soft noise swell, rustling amplitude
	CuePaper: {350 * time.Millisecond, func(t float64, n *noise) float64 {
		env := math.Sin(math.Pi * t / 0.35)
		rustle := 0.5 + 0.5*math.Sin(2*math.Pi*28*t)
		return 0.2 * env * rustle * n.next()
	}},
	// noise with a rising then falling pitch sweep
	CueWoosh: {500 * time.Millisecond, func(t float64, n *noise) float64 {
		env := math.Sin(math.Pi * t / 0.5)
		sweep := math.Sin(2 * math.Pi * (200 + 600*t) * t)
		return 0.2 * env * (0.7*n.next() + 0.3*sweep)
	}},
	CueClick: {60 * time.Millisecond, func(t float64, n *noise) float64 {
		return 0.4 * math.Exp(-t*120) * math.Sin(2*math.Pi*1200*t)
	}},
}

// synthesize renders a cue into a buffer at sr
func synthesize(name string, sr beep.SampleRate) *beep.Buffer {
	cue, ok := builtinCues[name]
	if !ok {
		cue = builtinCues[CueClick]
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	gen := &cueGenerator{sr: sr, sample: cue.sample, noise: noise{state: 1}}
	buf.Append(beep.Take(sr.N(cue.length), gen))
	return buf
}
