// Package audio is the boundary between the game and whatever makes sound.
// The game only ever calls Play and PlayLoop and never waits on them.
package audio

import (
	"fmt"
	"strings"
)

// Effect is a one-shot sound.
type Effect uint8

const (
	EffectGunshot Effect = iota
	EffectMissile
	EffectExplosion
)

var effectNames = [...]string{
	EffectGunshot:   "gunshot",
	EffectMissile:   "missile",
	EffectExplosion: "explosion",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", e)
}

// ParseEffect looks up an effect by its name, ignoring case.
func ParseEffect(name string) (Effect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range effectNames {
		if n == name {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sound effect %q", name)
}

// Track identifies a background soundtrack, numbered from 1.
type Track int

// TrackCount is the number of soundtracks a game picks from.
const TrackCount = 7

// Player plays sounds. Implementations must return immediately.
type Player interface {
	Play(effect Effect)
	PlayLoop(track Track)
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(Effect)    {}
func (Nop) PlayLoop(Track) {}
