package draw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps single writes under a typical MTU so frames stream
// smoothly over SSH.
const maxChunkSize = 1400

// Escape sequences.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ChunkWriter accumulates a frame and writes it out in MTU-sized chunks.
// Cursor positions passed to MoveCursor and WriteAt are shifted by the offset.
type ChunkWriter struct {
	buf    []byte
	bufw   *bufio.Writer
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter on top of w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset, e.g. after a terminal resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor move to the 1-based canvas cell (col, row).
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = appendCursor(cw.buf, col+cw.offCol, row+cw.offRow)
}

// WriteAt writes s starting at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, s...)
}

// WriteString appends s as is.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// Write implements io.Writer so a Canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

var _ io.Writer = (*ChunkWriter)(nil)

// Len returns the number of buffered bytes.
func (cw *ChunkWriter) Len() int {
	return len(cw.buf)
}

// Flush writes the frame in chunks and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.bufw.Write(data[:n]); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[n:]
	}
	cw.buf = cw.buf[:0]
	return nil
}

// ClearScreen appends a full screen clear.
func (cw *ChunkWriter) ClearScreen() {
	cw.WriteString(clearScreen)
}

// Border draws a box just outside a canvas of the given size. Edges that
// would fall off the terminal are skipped.
func (cw *ChunkWriter) Border(width, height int) {
	if cw.offRow >= 1 {
		line := strings.Repeat("─", width)
		cw.WriteAt(1, 0, line)
		cw.WriteAt(1, height+1, line)
	}
	if cw.offCol >= 1 {
		for row := 1; row <= height; row++ {
			cw.WriteAt(0, row, "│")
			cw.WriteAt(width+1, row, "│")
		}
	}
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the process's own terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClampTermSize fits a render area of at most maxCols x maxRows into the
// terminal and returns it with the 0-based offsets that centre it.
func ClampTermSize(termWidth, termHeight, maxCols, maxRows int) (width, height, offsetCol, offsetRow int) {
	width = max(min(termWidth, maxCols), 1)
	height = max(min(termHeight, maxRows), 1)
	offsetCol = max((termWidth-width)/2, 0)
	offsetRow = max((termHeight-height)/2, 0)
	return width, height, offsetCol, offsetRow
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, hideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, showCursor)
}

// ClearScreen clears the terminal and moves the cursor home.
func ClearScreen(w io.Writer) {
	io.WriteString(w, clearScreen)
}
