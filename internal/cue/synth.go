package cue

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	// bytes per stereo float32 frame
	frameBytes = 8
)

// Kind identifies a cue.
type Kind int

const (
	KindPress Kind = iota
	KindRelease
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	}
	return "unknown"
}

// Generate returns the samples for kind as interleaved float32 LE stereo.
func Generate(kind Kind) []byte {
	switch kind {
	case KindPress:
		return genPress()
	case KindRelease:
		return genRelease()
	}
	return nil
}

// genPress: crisp click sweeping up.
func genPress() []byte {
	n := SampleRate * 60 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.5, 0.0, 0.1)
		freq := 900 + 600*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRelease: short soft tick sweeping down.
func genRelease() []byte {
	n := SampleRate * 45 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.4, 0.0, 0.2)
		freq := 1100 - 500*p
		s := fm(t, freq, 0.5, 0.4) * env * 0.25
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func makeBuf(n int) []byte { return make([]byte, n*frameBytes) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
