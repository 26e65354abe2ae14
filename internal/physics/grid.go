package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded area. Items are inserted by position and index, then nearby items
// are found with a 3x3 neighbourhood lookup.
//
// Cell size must be >= the largest distance at which two inserted items can
// still collide. Positions outside the area are clamped into the edge cells.
type SpatialGrid struct {
	minX, minY  float64
	invCellSize float64
	cols        int
	rows        int
	cells       [][]int
}

// NewSpatialGrid creates a grid covering [minX, minX+width) x [minY, minY+height).
func NewSpatialGrid(minX, minY, width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		minX:        minX,
		minY:        minY,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]int, cols*rows),
	}
}

// Clear empties every cell, keeping the allocated slices for the next frame.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an item index at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.cell(x, y)
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], index)
}

// QueryAround calls fn for each item in the 3x3 cells around the position.
// Returning true from fn stops the iteration.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.cell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, item := range g.cells[r*g.cols+c] {
				if fn(item) {
					return
				}
			}
		}
	}
}

// cell converts a position to clamped grid coordinates.
func (g *SpatialGrid) cell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.minX) * g.invCellSize))
	row = int(math.Floor((y - g.minY) * g.invCellSize))
	return min(max(col, 0), g.cols-1), min(max(row, 0), g.rows-1)
}
