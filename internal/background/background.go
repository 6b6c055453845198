// Package background provides the vertically scrolling sea under the play
// field: a scroll offset the simulation advances every frame and a perlin
// noise texture the renderers sample.
package background

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Scroll is the background's vertical offset. It moves Speed pixels per
// frame and wraps at Height so the texture tiles.
type Scroll struct {
	Offset float64
	Speed  float64
	Height float64
}

// NewScroll creates a scroll for a field of the given height.
func NewScroll(speed, height float64) Scroll {
	return Scroll{Speed: speed, Height: height}
}

// Advance moves the background one frame.
func (s *Scroll) Advance() {
	s.Offset += s.Speed
	if s.Height > 0 && s.Offset >= s.Height {
		s.Offset = math.Mod(s.Offset, s.Height)
	}
}

// Levels is the number of shades a texture is quantized into.
const Levels = 4

// Noise parameters, tuned for soft wave-like blobs.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
	noiseScale   = 0.08
)

// Texture is a precomputed, vertically tileable shade map with one sample per
// cell.
type Texture struct {
	cellSize int
	cols     int
	rows     int
	shades   []uint8
}

// NewTexture generates a texture covering width x height field pixels.
func NewTexture(width, height, cellSize int, seed int64) *Texture {
	if cellSize < 1 {
		cellSize = 1
	}
	cols := max(1, (width+cellSize-1)/cellSize)
	rows := max(1, (height+cellSize-1)/cellSize)

	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	t := &Texture{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		shades:   make([]uint8, cols*rows),
	}

	h := float64(rows)
	for r := 0; r < rows; r++ {
		// Blend with the sample one period up so the last row meets the first.
		w := float64(r) / h
		for c := 0; c < cols; c++ {
			x := float64(c) * noiseScale
			a := p.Noise2D(x, float64(r)*noiseScale)
			b := p.Noise2D(x, (float64(r)-h)*noiseScale)
			t.shades[r*cols+c] = quantize(a*(1-w) + b*w)
		}
	}
	return t
}

// quantize maps noise in roughly [-1,1] onto [0, Levels).
func quantize(n float64) uint8 {
	v := int(math.Floor((n + 1) / 2 * Levels))
	return uint8(min(max(v, 0), Levels-1))
}

// CellSize returns the edge length of a texture cell in field pixels.
func (t *Texture) CellSize() int {
	return t.cellSize
}

// ShadeAt returns the shade visible at field position (x,y) when the
// background is scrolled down by offset.
func (t *Texture) ShadeAt(x, y, offset float64) uint8 {
	size := float64(t.cellSize)
	c := int(math.Floor(x / size))
	r := int(math.Floor((y - offset) / size))
	c = ((c % t.cols) + t.cols) % t.cols
	r = ((r % t.rows) + t.rows) % t.rows
	return t.shades[r*t.cols+c]
}
