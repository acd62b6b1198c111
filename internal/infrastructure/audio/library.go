package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/younwookim/isoroom/internal/domain/entity"
)

// Config configures the library
type Config struct {
	SampleRate int
	Volume     float64 // base-2 exponent; 0 leaves clips unchanged
	Muted      bool
}

// Library holds decoded or synthesized clips and plays them through
// the speaker mixer. Play is safe without an audio device: it counts
// the play and stays silent.
type Library struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	volume      float64
	muted       bool
	mixer       *beep.Mixer
	clips       map[string]*beep.Buffer
	plays       map[string]int
	initialized bool
	logger      *zap.Logger

	// OnPlay is called for every play, audible or not
	OnPlay func(name string)
}

// NewLibrary creates an empty library
func NewLibrary(cfg Config, logger *zap.Logger) *Library {
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = 44100
	}
	return &Library{
		sr:     sr,
		volume: cfg.Volume,
		muted:  cfg.Muted,
		mixer:  &beep.Mixer{},
		clips:  make(map[string]*beep.Buffer),
		plays:  make(map[string]int),
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (l *Library) Initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized {
		return nil
	}
	if err := speaker.Init(l.sr, l.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(l.mixer)
	l.initialized = true
	return nil
}

// Close stops every playing clip
func (l *Library) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return
	}
	speaker.Lock()
	l.mixer.Clear()
	speaker.Unlock()
	l.initialized = false
}

// Load prepares the named cues: sounds/<name>.wav from fsys when
// present, a synthesized clip otherwise.
func (l *Library) Load(fsys fs.FS, names ...string) error {
	for _, name := range names {
		if l.has(name) {
			continue
		}
		buf, err := l.decode(fsys, name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			l.logger.Debug("synthesizing sound", zap.String("cue", name))
			buf = synthesize(name, l.sr)
		case err != nil:
			return fmt.Errorf("failed to load sound %s: %w", name, err)
		}
		l.mu.Lock()
		l.clips[name] = buf
		l.mu.Unlock()
	}
	return nil
}

func (l *Library) has(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.clips[name]
	return ok
}

func (l *Library) decode(fsys fs.FS, name string) (*beep.Buffer, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(path.Join("sounds", name+".wav"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != l.sr {
		s = beep.Resample(4, format.SampleRate, l.sr, stream)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: l.sr, NumChannels: format.NumChannels, Precision: format.Precision})
	buf.Append(s)
	return buf, nil
}

// Sound returns a handle for the named cue. Cues not loaded yet are
// synthesized on first use.
func (l *Library) Sound(name string) entity.Sound {
	if !l.has(name) {
		_ = l.Load(nil, name)
	}
	return &Clip{lib: l, name: name}
}

// Len returns the clip length in samples, 0 when not loaded
func (l *Library) Len(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if buf, ok := l.clips[name]; ok {
		return buf.Len()
	}
	return 0
}

// Plays returns how often the named cue was played
func (l *Library) Plays(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.plays[name]
}

// SetMuted toggles output without affecting play counts
func (l *Library) SetMuted(muted bool) {
	l.mu.Lock()
	l.muted = muted
	l.mu.Unlock()
}

func (l *Library) play(name string) {
	l.mu.Lock()
	l.plays[name]++
	buf, ok := l.clips[name]
	audible := ok && l.initialized && !l.muted
	volume := l.volume
	onPlay := l.OnPlay
	l.mu.Unlock()

	if onPlay != nil {
		onPlay(name)
	}
	if !audible {
		return
	}

	s := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   volume,
		Silent:   math.IsInf(volume, -1),
	}
	speaker.Lock()
	l.mixer.Add(s)
	speaker.Unlock()
}

// Clip is a playable handle bound to one cue
type Clip struct {
	lib  *Library
	name string
}

// Play starts the clip; overlapping plays mix
func (c *Clip) Play() {
	c.lib.play(c.name)
}

// Name returns the cue name
func (c *Clip) Name() string {
	return c.name
}
