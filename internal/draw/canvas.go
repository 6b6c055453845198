package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing happens in logical coordinates which are
// scaled uniformly to fit the terminal and centred in it.
type Canvas struct {
	termWidth      int      // Terminal columns the canvas was fitted to
	termHeight     int      // Terminal rows the canvas was fitted to
	cols           int      // Canvas width in terminal columns
	rows           int      // Canvas height in terminal rows
	subPixelHeight int      // rows * 2
	pixels         []uint16 // Flat slice: [y * cols + x]; 0 is empty, otherwise Color+1

	logicalWidth  float64
	logicalHeight float64
	scale         float64 // Pixels per logical unit, same on both axes

	// 0-based terminal offsets of the canvas' top-left cell.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// space onto a termWidth x termHeight terminal, keeping the aspect ratio.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.fit(termWidth, termHeight)
	return c
}

// Resize refits the canvas to new terminal dimensions. It is a no-op when the
// size has not changed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.fit(termWidth, termHeight)
}

func (c *Canvas) fit(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)

	scale := min(float64(termWidth)/c.logicalWidth, float64(termHeight*2)/c.logicalHeight)
	cols := int(math.Floor(c.logicalWidth * scale))
	subPixels := int(math.Floor(c.logicalHeight * scale))
	rows := (subPixels + 1) / 2

	c.termWidth = termWidth
	c.termHeight = termHeight
	c.cols = cols
	c.rows = rows
	c.subPixelHeight = rows * 2
	c.scale = scale
	c.pixels = make([]uint16, c.subPixelHeight*cols)
	c.offsetCol = (termWidth - cols) / 2
	c.offsetRow = (termHeight - rows) / 2
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Cols returns the canvas width in terminal columns.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in terminal rows.
func (c *Canvas) Rows() int {
	return c.rows
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at canvas pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, color Color) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.cols+x] = uint16(color) + 1
	}
}

// At returns the colour of a canvas pixel and whether it is set.
func (c *Canvas) At(x, y int) (Color, bool) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subPixelHeight {
		return 0, false
	}
	v := c.pixels[y*c.cols+x]
	if v == 0 {
		return 0, false
	}
	return Color(v - 1), true
}

// SetFloat sets a pixel using logical coordinates.
func (c *Canvas) SetFloat(x, y float64, color Color) {
	c.setPixel(int(math.Floor(x*c.scale)), int(math.Floor(y*c.scale)), color)
}

// FillRect fills a w x h logical rectangle anchored at its top-left corner.
// Anything with a positive size covers at least one pixel, so small sprites
// stay visible on small terminals.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x * c.scale))
	y0 := int(math.Floor(y * c.scale))
	x1 := max(x0+1, int(math.Ceil((x+w)*c.scale)))
	y1 := max(y0+1, int(math.Ceil((y+h)*c.scale)))

	x0, x1 = max(x0, 0), min(x1, c.cols)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.cols : (py+1)*c.cols]
		for px := x0; px < x1; px++ {
			row[px] = uint16(color) + 1
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, color Color) {
	x1 := int(math.Floor(p1.X * c.scale))
	y1 := int(math.Floor(p1.Y * c.scale))
	x2 := int(math.Floor(p2.X * c.scale))
	y2 := int(math.Floor(p2.Y * c.scale))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
// Empty cells are skipped; the cursor is only repositioned after a gap.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 8)

	fg, bg := -1, -1 // Current SGR colours, -1 for the terminal default
	for row := 0; row < c.rows; row++ {
		top := c.pixels[row*2*c.cols : (row*2+1)*c.cols]
		bottom := c.pixels[(row*2+1)*c.cols : (row*2+2)*c.cols]
		cursor := -1

		for col := 0; col < c.cols; col++ {
			t, b := top[col], bottom[col]
			if t == 0 && b == 0 {
				continue
			}

			ch, wantFg, wantBg := cellGlyph(t, b)
			if cursor != col {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			}
			if wantFg != fg || wantBg != bg {
				writeSGR(&c.renderBuf, wantFg, wantBg)
				fg, bg = wantFg, wantBg
			}
			c.renderBuf.WriteRune(ch)
			cursor = col + 1
		}
	}
	if fg != -1 || bg != -1 {
		c.renderBuf.WriteString("\033[0m")
	}

	return writeChunked(w, c.renderBuf.String())
}

// cellGlyph picks the character and colours for a cell from its two pixels.
func cellGlyph(top, bottom uint16) (ch rune, fg, bg int) {
	switch {
	case top != 0 && top == bottom:
		return BlockFull, int(top) - 1, -1
	case top != 0 && bottom != 0:
		return BlockUpperHalf, int(top) - 1, int(bottom) - 1
	case top != 0:
		return BlockUpperHalf, int(top) - 1, -1
	default:
		return BlockLowerHalf, int(bottom) - 1, -1
	}
}

func writeSGR(b *strings.Builder, fg, bg int) {
	fmt.Fprintf(b, "\033[0;38;5;%d", fg)
	if bg >= 0 {
		fmt.Fprintf(b, ";48;5;%d", bg)
	}
	b.WriteByte('m')
}

// writeChunked writes data in chunks of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area where the terminal
// has room for it: horizontal bars when there is a vertical margin, vertical
// bars when there is a horizontal margin, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.cols + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.rows + 1

	var buf strings.Builder
	line := strings.Repeat("─", c.cols)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.rows; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	return writeChunked(w, buf.String())
}

// TerminalWidth returns the terminal column count the canvas was fitted to.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count the canvas was fitted to.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based cell position
// on the canvas, without the centering offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scale))
	py := int(math.Floor(y * c.scale))
	return px + 1, py/2 + 1
}
