package window

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/tomz197/skyraid/internal/background"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

const lineHeight = 16

var kindColors = map[object.Kind]color.Color{
	object.KindPlayer:        colornames.Deepskyblue,
	object.KindPlayerBullet:  colornames.Yellow,
	object.KindPlayerMissile: colornames.Orange,
	object.KindEnemy:         colornames.Crimson,
	object.KindEnemyBullet:   colornames.Magenta,
}

var shadeColors = [background.Levels]color.Color{
	colornames.Midnightblue,
	colornames.Navy,
	colornames.Darkblue,
	colornames.Mediumblue,
}

// Draw renders the field and the text overlay for the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	state := g.state

	screen.Fill(colornames.Black)
	if state.GameState == loop.GameStatePlaying || state.Holding(now) {
		g.drawWorld(screen, state.World)
	}

	switch {
	case state.GameState == loop.GameStateStart:
		g.drawStartScreen(screen)
	case state.GameState == loop.GameStatePlaying || state.Holding(now):
		g.drawHUD(screen, state.World)
	default:
		g.drawGameOverScreen(screen)
	}
}

func (g *Game) drawWorld(screen *ebiten.Image, w *world.World) {
	g.drawBackground(screen, w)

	for _, list := range [][]object.Entity{w.EnemyBullets, w.Enemies, w.Bullets, w.Missiles} {
		for i := range list {
			e := &list[i]
			fillRect(screen, e.X, e.Y, e.Width(), e.Height(), kindColors[e.Kind])
		}
	}
	drawPlayer(screen, w.Player)

	for _, x := range w.Explosions {
		drawExplosion(screen, x)
	}
}

// drawBackground tiles the texture down the screen, shifted by the scroll offset.
func (g *Game) drawBackground(screen *ebiten.Image, w *world.World) {
	field := w.Rules().Field
	cell := float64(g.texture.CellSize())
	offset := w.Scroll.Offset

	for y := math.Mod(offset, cell) - cell; y < float64(field.Height); y += cell {
		for x := 0.0; x < float64(field.Width); x += cell {
			shade := g.texture.ShadeAt(x+cell/2, y+cell/2, offset)
			fillRect(screen, x, y, cell, cell, shadeColors[shade])
		}
	}
}

func drawPlayer(screen *ebiten.Image, p *object.Player) {
	clr := kindColors[object.KindPlayer]
	w, h := p.Width(), p.Height()

	fillRect(screen, p.X+w*3/8, p.Y, w/4, h, clr)

	wingX, wingW := p.X, w
	switch p.Facing {
	case object.FacingLeft:
		wingW = w * 7 / 8
	case object.FacingRight:
		wingX, wingW = p.X+w/8, w*7/8
	}
	fillRect(screen, wingX, p.Y+h*3/8, wingW, h/4, clr)
	fillRect(screen, p.X+w/4, p.Y+h*13/16, w/2, h/8, clr)
}

func drawExplosion(screen *ebiten.Image, x object.Explosion) {
	const size = object.ExplosionSize
	x0, y0 := float32(x.X), float32(x.Y)
	vector.StrokeLine(screen, x0, y0, x0+size, y0+size, 2, colornames.Gold, false)
	vector.StrokeLine(screen, x0+size, y0, x0, y0+size, 2, colornames.Gold, false)
	fillRect(screen, x.X+size/4, x.Y+size/4, size/2, size/2, colornames.Orange)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (g *Game) drawStartScreen(screen *ebiten.Image) {
	cx, cy := g.center()
	g.writeCentered(screen, cx, cy-3*lineHeight, "S K Y R A I D")
	g.writeCentered(screen, cx, cy, "Press SPACE to start")
	g.writeCentered(screen, cx, cy+2*lineHeight, "Move: arrows/WASD")
	g.writeCentered(screen, cx, cy+3*lineHeight, "SPACE: missile")
	g.writeCentered(screen, cx, cy+4*lineHeight, "Q: quit")
}

func (g *Game) drawHUD(screen *ebiten.Image, w *world.World) {
	g.write(screen, 8, 4, fmt.Sprintf("Lives: %d", w.Player.Lives))
	g.write(screen, 8, 4+lineHeight, fmt.Sprintf("Health: %d", w.Player.Health))
	g.write(screen, 8, 4+2*lineHeight, fmt.Sprintf("Score: %d", w.Score))
	if w.MissileReady() {
		g.write(screen, 8, 4+3*lineHeight, "Missile ready")
	}
}

func (g *Game) drawGameOverScreen(screen *ebiten.Image) {
	cx, cy := g.center()
	g.writeCentered(screen, cx, cy-2*lineHeight, "GAME OVER")
	g.writeCentered(screen, cx, cy, fmt.Sprintf("Score: %d", g.state.World.Score))
	g.writeCentered(screen, cx, cy+lineHeight, fmt.Sprintf("Best: %d", g.state.BestScore))
	g.writeCentered(screen, cx, cy+3*lineHeight, "SPACE to play again")
	g.writeCentered(screen, cx, cy+4*lineHeight, "Q to quit")
}

func (g *Game) center() (float64, float64) {
	field := g.opts.Rules.Field
	return float64(field.Width) / 2, float64(field.Height) / 2
}

func (g *Game) write(screen *ebiten.Image, x, y float64, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) writeCentered(screen *ebiten.Image, cx, y float64, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, g.face, op)
}
