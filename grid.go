package vectorscope

import "strings"

// GridSize is the number of rows and columns in every Grid.
const GridSize = 16

// center is the fractional cell index that maps to the origin of the display.
const center = (GridSize - 1) / 2.0

type (
	// Grid is one drawable frame: a row-major matrix of on/off cells with the
	// origin at the top-left corner. Being an array, assigning a Grid copies
	// it, so a Grid handed to the synthesizer is a snapshot.
	Grid [GridSize][GridSize]bool

	// Cell addresses one cell of a Grid.
	Cell struct {
		Row, Col int
	}

	// Point is a beam position in normalized display coordinates; both X and
	// Y are in [-1, 1], X growing to the right and Y growing upwards.
	Point struct {
		X, Y float32
	}
)

// InBounds reports whether the cell lies inside a Grid.
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Point maps the cell to display coordinates. Row 0 is the top of the
// display, so the row axis is inverted.
func (c Cell) Point() Point {
	return Point{
		X: float32((float64(c.Col) - center) / center),
		Y: float32((center - float64(c.Row)) / center),
	}
}

// Get returns the state of the cell; cells outside the grid are always off.
func (g Grid) Get(c Cell) bool {
	if !c.InBounds() {
		return false
	}
	return g[c.Row][c.Col]
}

// Set sets the state of the cell. Cells outside the grid are ignored.
func (g *Grid) Set(c Cell, value bool) {
	if !c.InBounds() {
		return
	}
	g[c.Row][c.Col] = value
}

// Toggle flips the cell and returns its new state.
func (g *Grid) Toggle(c Cell) bool {
	if !c.InBounds() {
		return false
	}
	g[c.Row][c.Col] = !g[c.Row][c.Col]
	return g[c.Row][c.Col]
}

// Clear switches every cell off.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Lit returns the lit cells in row-major order.
func (g Grid) Lit() []Cell {
	var ret []Cell
	for r := range g {
		for c := range g[r] {
			if g[r][c] {
				ret = append(ret, Cell{Row: r, Col: c})
			}
		}
	}
	return ret
}

// Count returns the number of lit cells.
func (g Grid) Count() int {
	n := 0
	for r := range g {
		for c := range g[r] {
			if g[r][c] {
				n++
			}
		}
	}
	return n
}

// Empty reports whether no cell is lit.
func (g Grid) Empty() bool { return g.Count() == 0 }

// String draws the grid with '#' for lit cells and '.' for the rest, one
// line per row.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g {
		for c := range g[r] {
			if g[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
