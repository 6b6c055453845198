package window

import (
	"bytes"

	"github.com/charmbracelet/log"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/skyraid/internal/audio"
)

const (
	effectVolume = 0.6
	themeVolume  = 0.35
)

// Speaker plays effects and theme tracks on the ebiten audio device.
type Speaker struct {
	ctx     *ebitenaudio.Context
	effects map[audio.Effect][]byte
	theme   *ebitenaudio.Player
	logger  *log.Logger
}

// NewSpeaker synthesizes every effect up front. Only one ebiten audio
// context may exist per process, so an existing one is reused.
func NewSpeaker(sampleRate int, logger *log.Logger) *Speaker {
	ctx := ebitenaudio.CurrentContext()
	if ctx == nil {
		ctx = ebitenaudio.NewContext(sampleRate)
	}

	effects := make(map[audio.Effect][]byte)
	for _, e := range []audio.Effect{audio.EffectGunshot, audio.EffectMissile, audio.EffectExplosion} {
		effects[e] = audio.Tone(e, ctx.SampleRate())
	}

	return &Speaker{ctx: ctx, effects: effects, logger: logger}
}

// Play starts a one-shot effect. Effects overlap freely.
func (s *Speaker) Play(effect audio.Effect) {
	pcm, ok := s.effects[effect]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(effectVolume)
	p.Play()
}

// PlayLoop replaces the current theme with track, looping forever.
func (s *Speaker) PlayLoop(track audio.Track) {
	if s.theme != nil {
		if err := s.theme.Close(); err != nil {
			s.logger.Warn("stop theme", "err", err)
		}
		s.theme = nil
	}

	pcm := audio.Theme(track, s.ctx.SampleRate())
	loop := ebitenaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := s.ctx.NewPlayer(loop)
	if err != nil {
		s.logger.Warn("start theme", "track", track, "err", err)
		return
	}
	p.SetVolume(themeVolume)
	p.Play()
	s.theme = p
}
