package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/skyraid/internal/input"
)

var bindings = input.Bindings[ebiten.Key]{
	Quit:    []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape},
	Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	Up:      []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	Down:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
	Fire:    []ebiten.Key{ebiten.KeySpace},
	Confirm: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// readInput samples the keyboard into a frame of input.
func (g *Game) readInput() input.Input {
	return g.fireLatch.Filter(bindings.Poll(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
}
