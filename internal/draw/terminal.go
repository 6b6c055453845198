package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ChunkWriter accumulates a whole frame of terminal output and writes it in
// chunks for smooth network flow (e.g. over SSH). Use MoveCursor, WriteString
// and WriteAt to accumulate, then Flush once per frame.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int

	cols, rows int // WriteAt bounds in canvas cells; 0 disables clipping
	lastFlush  int // Bytes written by the most recent Flush
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for use with Canvas.Render and other writers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// SetBounds clips WriteAt to a cols x rows canvas so overlay text never wraps
// onto the next terminal line.
func (cw *ChunkWriter) SetBounds(cols, rows int) {
	cw.cols = cols
	cw.rows = rows
}

// WriteAt writes a string at a specific position. col and row are 1-based
// canvas coordinates; offset is applied automatically. Text outside the bounds
// is cut off.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	if cw.rows > 0 && (row < 1 || row > cw.rows) {
		return
	}
	if cw.cols > 0 {
		room := cw.cols - col + 1
		if room <= 0 {
			return
		}
		if len(s) > room {
			s = s[:room]
		}
	}
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteByte appends a byte to the buffer.
func (cw *ChunkWriter) WriteByte(c byte) error {
	return cw.buf.WriteByte(c)
}

// Pending returns the number of bytes waiting for Flush.
func (cw *ChunkWriter) Pending() int {
	return cw.buf.Len()
}

// LastFlush returns how many bytes the most recent Flush wrote.
func (cw *ChunkWriter) LastFlush() int {
	return cw.lastFlush
}

var (
	_ io.Writer       = (*ChunkWriter)(nil)
	_ io.StringWriter = (*ChunkWriter)(nil)
)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer. Uses the same chunk size as Canvas.Render.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	cw.lastFlush = len(data)
	if err := writeChunked(cw.bufw, data); err != nil {
		return err
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ANSI control sequences.
const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqClearScreen)
	return err
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) error {
	_, err := io.WriteString(w, seqHideCursor)
	return err
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) error {
	_, err := io.WriteString(w, seqShowCursor)
	return err
}

// FixedSize returns a TermSizeFunc that always reports width x height.
func FixedSize(width, height int) TermSizeFunc {
	return func() (int, int, error) {
		return width, height, nil
	}
}
