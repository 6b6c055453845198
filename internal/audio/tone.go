package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// BytesPerFrame is the size of one sample frame: 16-bit little-endian stereo.
const BytesPerFrame = 4

const amplitude = 0.3 * math.MaxInt16

// trackRoots holds the root frequency of each soundtrack's bass line.
var trackRoots = [TrackCount]float64{110, 123.47, 130.81, 146.83, 164.81, 174.61, 196}

// arpeggio is the semitone pattern every soundtrack loops over its root.
var arpeggio = [...]int{0, 7, 12, 7, 3, 10, 15, 10}

const noteLength = 180 * time.Millisecond

// Tone synthesizes the PCM for an effect.
func Tone(effect Effect, sampleRate int) []byte {
	switch effect {
	case EffectGunshot:
		return synth(sampleRate, 40*time.Millisecond, func(t, p float64) float64 {
			return square(880*t) * (1 - p)
		})
	case EffectMissile:
		return synth(sampleRate, 150*time.Millisecond, func(t, p float64) float64 {
			// Rising sweep: instantaneous frequency 300 + 600p.
			return math.Sin(2*math.Pi*(300*t+300*p*t)) * (1 - p/2)
		})
	case EffectExplosion:
		rng := rand.New(rand.NewPCG(1, uint64(sampleRate)))
		return synth(sampleRate, 300*time.Millisecond, func(_, p float64) float64 {
			return (rng.Float64()*2 - 1) * (1 - p) * (1 - p)
		})
	default:
		return nil
	}
}

// Theme synthesizes one loop of a soundtrack. Out-of-range tracks fall back
// to the first.
func Theme(track Track, sampleRate int) []byte {
	idx := int(track) - 1
	if idx < 0 || idx >= TrackCount {
		idx = 0
	}
	root := trackRoots[idx]

	var out []byte
	for _, semis := range arpeggio {
		freq := root * math.Pow(2, float64(semis)/12)
		out = append(out, synth(sampleRate, noteLength, func(t, p float64) float64 {
			return 0.4 * math.Sin(2*math.Pi*freq*t) * (1 - 0.6*p)
		})...)
	}
	return out
}

// synth samples fn over d and encodes the result. fn gets the time in seconds
// and the progress through the sound in [0,1).
func synth(sampleRate int, d time.Duration, fn func(t, progress float64) float64) []byte {
	n := int(int64(d) * int64(sampleRate) / int64(time.Second))
	buf := make([]byte, n*BytesPerFrame)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(clampUnit(fn(t, float64(i)/float64(n))) * amplitude)
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame+2:], uint16(v))
	}
	return buf
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
