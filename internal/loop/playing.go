package loop

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/world"
)

// DefaultRand returns a randomly seeded source for one game.
func DefaultRand() world.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// update advances the session by one frame of input.
func (s *Session) update(in input.Input, now time.Time) {
	state := s.state

	if in.Quit {
		state.Running = false
		return
	}

	if in.Any() {
		state.lastInput = now
	} else if s.opts.IdleTimeout > 0 && now.Sub(state.lastInput) > s.opts.IdleTimeout {
		s.logger.Info("disconnecting idle player", "idle", now.Sub(state.lastInput).Round(time.Second))
		state.Running = false
		return
	}

	switch state.Advance(in, now, s.newWorld) {
	case GameStarted:
		s.logger.Debug("game started", "game", state.Games, "track", state.World.Track)
	case GameEnded:
		score := state.World.Score
		s.opts.Metrics.GameOver(score)
		s.logger.Info("game over", "score", score, "frames", state.World.Frame, "best", state.BestScore)
	}
}

// newWorld forgets held keys so the press that started a game does not also
// fire on its first frame.
func (s *Session) newWorld() *world.World {
	input.ResetKeyInput(s.inputStream)
	return world.New(s.opts.Rules, s.opts.NewRand(), s.sounds)
}
