package loop

import (
	"math"
	"time"

	"github.com/tomz197/skyraid/internal/background"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/world"
)

// kindColors maps entity kinds to their colour on the canvas.
var kindColors = map[object.Kind]draw.Color{
	object.KindPlayer:        draw.ColorCyan,
	object.KindPlayerBullet:  draw.ColorYellow,
	object.KindPlayerMissile: draw.ColorOrange,
	object.KindEnemy:         draw.ColorRed,
	object.KindEnemyBullet:   draw.ColorMagenta,
}

// shadeColors maps background shades to colours. Shade 0 and 1 stay empty so
// the background costs few bytes per frame.
var shadeColors = [background.Levels]draw.Color{0, 0, draw.ColorNavy, draw.ColorDeepSea}

// drawFrame clears the screen, draws the field and the UI overlay, and writes
// the frame in one flush.
func (s *Session) drawFrame(now time.Time) error {
	if err := draw.ClearScreen(s.writer); err != nil {
		return err
	}
	s.canvas.Clear()

	showField := s.state.GameState == GameStatePlaying || s.state.Holding(now)
	if showField {
		drawWorld(s.canvas, s.texture, s.state.World)
	}

	if err := s.canvas.Render(s.writer); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.writer); err != nil {
		return err
	}

	// Draw UI overlay (after canvas render so it's on top)
	s.drawUI(now)

	return s.writer.Flush()
}

// drawWorld paints the background and every entity of w.
func drawWorld(c *draw.Canvas, tex *background.Texture, w *world.World) {
	drawBackground(c, tex, w)

	for _, list := range [][]object.Entity{w.EnemyBullets, w.Enemies, w.Bullets, w.Missiles} {
		for i := range list {
			drawEntity(c, &list[i])
		}
	}
	drawPlayer(c, w.Player)

	for _, x := range w.Explosions {
		drawExplosion(c, x)
	}
}

// drawBackground paints the darker texture cells, shifted by the scroll offset.
func drawBackground(c *draw.Canvas, tex *background.Texture, w *world.World) {
	field := w.Rules().Field
	cell := float64(tex.CellSize())
	offset := w.Scroll.Offset

	for y := math.Mod(offset, cell) - cell; y < float64(field.Height); y += cell {
		for x := 0.0; x < float64(field.Width); x += cell {
			shade := tex.ShadeAt(x+cell/2, y+cell/2, offset)
			if color := shadeColors[shade]; color != 0 {
				c.FillRect(x, y, cell, cell, color)
			}
		}
	}
}

func drawEntity(c *draw.Canvas, e *object.Entity) {
	c.FillRect(e.X, e.Y, e.Width(), e.Height(), kindColors[e.Kind])
}

// drawPlayer draws the aircraft as a fuselage with wings that tilt toward the
// direction of travel.
func drawPlayer(c *draw.Canvas, p *object.Player) {
	color := kindColors[object.KindPlayer]
	w, h := p.Width(), p.Height()

	c.FillRect(p.X+w*3/8, p.Y, w/4, h, color)

	wingX, wingW := p.X, w
	switch p.Facing {
	case object.FacingLeft:
		wingW = w * 7 / 8
	case object.FacingRight:
		wingX, wingW = p.X+w/8, w*7/8
	}
	c.FillRect(wingX, p.Y+h*3/8, wingW, h/4, color)
	c.FillRect(p.X+w/4, p.Y+h*13/16, w/2, h/8, color)
}

// drawExplosion draws the static explosion marker: a cross over its box.
func drawExplosion(c *draw.Canvas, x object.Explosion) {
	const size = object.ExplosionSize
	c.DrawLine(draw.Point{X: x.X, Y: x.Y}, draw.Point{X: x.X + size - 1, Y: x.Y + size - 1}, draw.ColorGold)
	c.DrawLine(draw.Point{X: x.X + size - 1, Y: x.Y}, draw.Point{X: x.X, Y: x.Y + size - 1}, draw.ColorGold)
	c.FillRect(x.X+size/4, x.Y+size/4, size/2, size/2, draw.ColorOrange)
}
