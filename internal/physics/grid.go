package physics

import "math"

// SpatialGrid buckets boxes on a bounded play field so overlap queries only
// look at nearby items. A box is stored in every cell it covers, so any cell
// size works; smaller cells mean fewer candidates but more cells per box.
// Boxes reaching past the field are clipped to the border cells.
type SpatialGrid struct {
	cellSize float64
	inv      float64 // 1 / cellSize
	cols     int
	rows     int
	cells    [][]int // Item indices per cell, row-major; reused between frames
}

// NewSpatialGrid creates a grid covering a fieldW x fieldH field.
func NewSpatialGrid(fieldW, fieldH, cellSize float64) *SpatialGrid {
	cols := max(1, int(math.Ceil(fieldW/cellSize)))
	rows := max(1, int(math.Ceil(fieldH/cellSize)))

	return &SpatialGrid{
		cellSize: cellSize,
		inv:      1 / cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

// CellSize returns the grid's cell edge length.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear empties every cell and keeps the backing arrays.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert stores index in every cell r covers.
func (g *SpatialGrid) Insert(r Rect, index int) {
	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i := row*g.cols + col
			g.cells[i] = append(g.cells[i], index)
		}
	}
}

// Query calls fn for the items stored in the cells r covers. An item spanning
// several of those cells is reported once per cell. Returning true from fn
// stops the query.
func (g *SpatialGrid) Query(r Rect, fn func(index int) bool) {
	c0, r0, c1, r1 := g.span(r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, index := range g.cells[row*g.cols+col] {
				if fn(index) {
					return
				}
			}
		}
	}
}

// span returns the inclusive cell range covered by r.
func (g *SpatialGrid) span(r Rect) (col0, row0, col1, row1 int) {
	col0, row0 = g.cell(r.X, r.Y)
	col1, row1 = g.cell(r.X+r.W, r.Y+r.H)
	return col0, row0, col1, row1
}

func (g *SpatialGrid) cell(x, y float64) (col, row int) {
	col = min(max(int(math.Floor(x*g.inv)), 0), g.cols-1)
	row = min(max(int(math.Floor(y*g.inv)), 0), g.rows-1)
	return col, row
}
