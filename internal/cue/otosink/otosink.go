// Package otosink plays cue samples through oto.
package otosink

import (
	"bytes"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"tridemo/internal/cue"
)

// maxVoices limits overlapping cues to avoid clipping on rapid clicks.
const maxVoices = 4

var (
	ErrNotReady = errors.New("otosink: audio device not ready")
	ErrBusy     = errors.New("otosink: too many voices")
)

// Sink is a cue.Sink backed by an oto context.
type Sink struct {
	ctx    *oto.Context
	ready  chan struct{}
	voices atomic.Int32
}

var _ cue.Sink = (*Sink)(nil)

func New() (*Sink, error) {
	ctx, ready, err := oto.NewContext(cue.SampleRate, cue.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &Sink{ctx: ctx, ready: ready}, nil
}

// Play starts playback on its own goroutine and returns immediately.
func (s *Sink) Play(samples []byte, volume float64) error {
	select {
	case <-s.ready:
	default:
		return ErrNotReady
	}
	if len(samples) == 0 {
		return nil
	}
	if s.voices.Add(1) > maxVoices {
		s.voices.Add(-1)
		return ErrBusy
	}
	go func() {
		defer s.voices.Add(-1)
		player := s.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return nil
}
