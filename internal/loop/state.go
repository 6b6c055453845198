package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/world"
)

// GameState represents the current phase of a session.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateOver                     // Out of lives, show score and restart prompt
)

func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	default:
		return "unknown"
	}
}

// gameOverHold is how long the final frame stays up before the game over
// screen replaces it.
const gameOverHold = 500 * time.Millisecond

// State holds everything a session tracks between frames.
type State struct {
	GameState GameState
	World     *world.World // Current or last finished game; nil before the first
	Input     input.Input
	Running   bool

	Games     int // Games started this session
	BestScore int

	overAt    time.Time // When the current game ended
	lastInput time.Time // Last time any key arrived
}

// NewState creates a session state on the title screen.
func NewState(now time.Time) *State {
	return &State{
		GameState: GameStateStart,
		Running:   true,
		lastInput: now,
	}
}

// Holding reports whether the final frame of a finished game is still shown.
func (s *State) Holding(now time.Time) bool {
	return s.GameState == GameStateOver && now.Sub(s.overAt) < gameOverHold
}

// Transition reports what a frame did to the session.
type Transition int

const (
	NoTransition Transition = iota
	GameStarted
	GameEnded
)

// Advance applies one frame of input to the session. newWorld builds the world
// for each game started.
func (s *State) Advance(in input.Input, now time.Time, newWorld func() *world.World) Transition {
	switch s.GameState {
	case GameStateStart:
		if in.Fire || in.Confirm {
			s.start(newWorld())
			return GameStarted
		}
	case GameStatePlaying:
		if s.World.Step(in) == world.GameOver {
			s.GameState = GameStateOver
			s.overAt = now
			s.BestScore = max(s.BestScore, s.World.Score)
			return GameEnded
		}
	case GameStateOver:
		if !s.Holding(now) && (in.Fire || in.Confirm) {
			s.start(newWorld())
			return GameStarted
		}
	}
	return NoTransition
}

func (s *State) start(w *world.World) {
	s.World = w
	s.GameState = GameStatePlaying
	s.Games++
}
