// Package audio plays short synthesized tones for game events.
package audio

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player emits one-shot sound effects through the system speaker. A nil or
// disabled player silently drops every call, so callers never need to check.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. Audio failure is not fatal: the game
// runs fine without sound, so an init error just disables the player.
func NewPlayer(enabled bool, logger *log.Logger) *Player {
	if !enabled {
		return &Player{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		if logger != nil {
			logger.Warn("audio initialization failed", "error", err)
		}
		return &Player{}
	}
	return &Player{enabled: true}
}

// Eat plays the apple-consumed blip.
func (p *Player) Eat() {
	p.tone(880, 50*time.Millisecond)
}

// GameOver plays the losing tone.
func (p *Player) GameOver() {
	p.tone(220, 300*time.Millisecond)
}

func (p *Player) tone(freq float64, d time.Duration) {
	if p == nil || !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
