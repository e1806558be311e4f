// Package cue plays short procedural tones when the triangle is grabbed and
// released. Player subscribes to the window dispatcher next to the scene.
package cue

import (
	"log/slog"

	"tridemo/internal/event"
	"tridemo/internal/logging"
)

// Sink plays a buffer of interleaved float32 LE stereo samples at the given
// volume without blocking the caller.
type Sink interface {
	Play(samples []byte, volume float64) error
}

// Player is an event.Subscriber. Tones are generated once and reused.
type Player struct {
	sink   Sink
	volume float64
	log    *slog.Logger
	tones  map[Kind][]byte
}

func NewPlayer(sink Sink, volume float64) *Player {
	return &Player{
		sink:   sink,
		volume: clampF(volume, 0, 1),
		log:    logging.Logger(),
		tones: map[Kind][]byte{
			KindPress:   Generate(KindPress),
			KindRelease: Generate(KindRelease),
		},
	}
}

// OnEvent implements event.Subscriber.
func (p *Player) OnEvent(e event.Event) {
	if e.Code != event.CodeMouse {
		return
	}
	switch e.Mouse.Action {
	case event.ButtonDown:
		p.play(KindPress)
	case event.ButtonUp:
		p.play(KindRelease)
	}
}

func (p *Player) play(kind Kind) {
	if p.sink == nil || p.volume <= 0 {
		return
	}
	if err := p.sink.Play(p.tones[kind], p.volume); err != nil {
		p.log.Debug("cue dropped", "kind", kind, "err", err)
	}
}
