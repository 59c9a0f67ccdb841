package assets

import (
	"encoding/binary"
	"math"
)

// SoundID names a synthesized cue.
type SoundID int

const (
	SoundEnter SoundID = iota
	SoundLeave
	SoundPress
)

type tone struct {
	freq   float64 // Hz at the start
	slide  float64 // Hz at the end
	millis int
}

var tones = map[SoundID]tone{
	SoundEnter: {freq: 880, slide: 1320, millis: 45},
	SoundLeave: {freq: 660, slide: 440, millis: 45},
	SoundPress: {freq: 220, slide: 180, millis: 70},
}

// SFX renders the cue as 16-bit little-endian stereo PCM, the format
// ebiten's audio players read. It returns nil for unknown ids.
func SFX(id SoundID, sampleRate int) []byte {
	t, ok := tones[id]
	if !ok || sampleRate <= 0 {
		return nil
	}
	n := sampleRate * t.millis / 1000
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.freq + (t.slide-t.freq)*p
		phase += 2 * math.Pi * freq / float64(sampleRate)
		// Linear attack over the first 5%, then exponential decay.
		env := math.Exp(-4 * p)
		if p < 0.05 {
			env *= p / 0.05
		}
		v := int16(math.Sin(phase) * env * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
