// Package draw renders to ANSI terminals: a colour canvas with twice the
// vertical resolution of the terminal, and a chunked writer for SSH links.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Color is an ANSI 256-colour palette index.
type Color uint8

// A few palette entries the renderers share.
const (
	ColorBlack   Color = 16
	ColorNavy    Color = 17
	ColorDeepSea Color = 18
	ColorSea     Color = 19
	ColorRed     Color = 196
	ColorMagenta Color = 201
	ColorOrange  Color = 208
	ColorGold    Color = 220
	ColorYellow  Color = 226
	ColorCyan    Color = 45
	ColorWhite   Color = 231
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
