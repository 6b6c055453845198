// Package window runs the game in a desktop window with ebiten.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/skyraid/internal/audio"
	"github.com/tomz197/skyraid/internal/background"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/world"
)

const (
	title          = "Skyraid"
	sampleRate     = 44100
	backgroundCell = 16
	windowScale    = 2
)

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Rules   world.Rules
	NewRand func() world.Rand
	TPS     int  // Update ticks per second, 0 keeps ebiten's default
	Mute    bool // Skip the audio device entirely
	Logger  *log.Logger
}

// Game implements ebiten.Game around one player's session.
type Game struct {
	opts      Options
	state     *loop.State
	sounds    audio.Player
	texture   *background.Texture
	face      *text.GoXFace
	logger    *log.Logger
	fireLatch input.FireLatch
}

// New creates a game on the title screen.
func New(opts Options) *Game {
	if opts.Rules.Field.Width == 0 {
		opts.Rules = world.DefaultRules()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var sounds audio.Player = audio.Nop{}
	if !opts.Mute {
		sounds = NewSpeaker(sampleRate, logger)
	}

	field := opts.Rules.Field
	return &Game{
		opts:    opts,
		state:   loop.NewState(time.Now()),
		sounds:  sounds,
		texture: background.NewTexture(field.Width, field.Height, backgroundCell, time.Now().UnixNano()),
		face:    text.NewGoXFace(basicfont.Face7x13),
		logger:  logger,
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g *Game) error {
	field := g.opts.Rules.Field
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(field.Width*windowScale, field.Height*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.opts.TPS > 0 {
		ebiten.SetTPS(g.opts.TPS)
	}
	return ebiten.RunGame(g)
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	in := g.readInput()
	if in.Quit {
		return ebiten.Termination
	}

	state := g.state
	switch state.Advance(in, time.Now(), g.newWorld) {
	case loop.GameStarted:
		g.fireLatch.Arm()
		g.logger.Debug("game started", "game", state.Games, "track", state.World.Track)
	case loop.GameEnded:
		g.logger.Info("game over", "score", state.World.Score, "frames", state.World.Frame, "best", state.BestScore)
	}
	return nil
}

func (g *Game) newWorld() *world.World {
	return world.New(g.opts.Rules, g.newRand(), g.sounds)
}

func (g *Game) newRand() world.Rand {
	if g.opts.NewRand != nil {
		return g.opts.NewRand()
	}
	return loop.DefaultRand()
}

// Layout keeps the logical screen at the field size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Rules.Field.Width, g.opts.Rules.Field.Height
}
