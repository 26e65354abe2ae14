// Package draw renders to a terminal using half-block characters.
package draw

import (
	"io"
	"math"
	"strconv"
)

// Point is a canvas position in logical units (+y down).
type Point struct {
	X, Y float64
}

// Block characters used to render two sub-pixels per terminal cell.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution. Shapes are drawn in
// logical coordinates and scaled to the terminal area the canvas covers.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets used to centre the canvas.
	offsetCol int
	offsetRow int

	renderBuf []byte
	pointBuf  []Point
}

// NewScaledCanvas creates a canvas of termWidth x termHeight cells showing a
// logicalWidth x logicalHeight area.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the terminal area while keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row where the canvas starts.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// IsSet reports whether the pixel under a logical position is lit.
func (c *Canvas) IsSet(x, y float64) bool {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return false
	}
	return c.pixels[py*c.termWidth+px]
}

// SetFloat lights the pixel under a logical position.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// FillRect fills the logical rectangle with top-left (x, y) and size (w, h).
// Every rectangle lights at least one pixel, however small it is once scaled.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := max(int(math.Ceil((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((y+h)*c.scaleY)), y0+1)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx + dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon.
func (c *Canvas) DrawPolygon(points []Point) {
	if len(points) < 3 {
		return
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawRing draws a circle outline of the given logical radius.
func (c *Canvas) DrawRing(cx, cy, radius float64, segments int) {
	points := c.BorrowPoints(segments)
	for i := range points {
		a := float64(i) * 2 * math.Pi / float64(segments)
		points[i] = Point{X: cx + math.Cos(a)*radius, Y: cy + math.Sin(a)*radius}
	}
	c.DrawPolygon(points)
}

// BorrowPoints returns a reusable slice of n points, valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}

// Render writes the lit cells as cursor moves and half-block characters.
// Empty cells are skipped; the caller clears the screen.
func (c *Canvas) Render(w io.Writer) error {
	buf := c.renderBuf[:0]
	for row := 0; row < c.termHeight; row++ {
		top := c.pixels[row*2*c.termWidth:]
		bottom := c.pixels[(row*2+1)*c.termWidth:]
		for col := 0; col < c.termWidth; col++ {
			var ch rune
			switch {
			case top[col] && bottom[col]:
				ch = BlockFull
			case top[col]:
				ch = BlockUpperHalf
			case bottom[col]:
				ch = BlockLowerHalf
			default:
				continue
			}
			buf = appendCursor(buf, col+1+c.offsetCol, row+1+c.offsetRow)
			buf = append(buf, string(ch)...)
		}
	}
	c.renderBuf = buf
	_, err := w.Write(buf)
	return err
}

// TerminalWidth returns the canvas width in terminal columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in terminal rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func appendCursor(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
