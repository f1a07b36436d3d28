package view

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	CrashTone  = 220.0
	FreezeTone = 880.0

	sampleRate   = beep.SampleRate(44100)
	toneDuration = 80 * time.Millisecond
)

// Sounder plays a short tone.
type Sounder interface {
	Play(freq float64)
}

// Cue is a Sounder backed by the system speaker.
type Cue struct {
	ok bool
}

// NewCue initializes the speaker. A Cue whose initialization failed is still
// usable and is silent.
func NewCue() (*Cue, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Cue{ok: err == nil}, err
}

func (c *Cue) Play(freq float64) {
	if c == nil || !c.ok { return }
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil { return }
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

func (c *Cue) Close() {
	if c != nil && c.ok { speaker.Close() }
}

type silent struct{}

func (silent) Play(freq float64) {}
