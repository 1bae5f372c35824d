package vectorscope

// Path is the beam trajectory for one Grid: the lit cells in visiting order
// and their display coordinates. The zero Path is the empty path, produced
// for grids with no lit cells.
type Path struct {
	Cells  []Cell
	Points []Point
}

// Empty reports whether the path has no points, i.e. the frame is blank.
func (p Path) Empty() bool { return len(p.Points) == 0 }

// Len returns the number of points in the path.
func (p Path) Len() int { return len(p.Points) }

// Last returns the final cell of the path and false for the empty path.
func (p Path) Last() (Cell, bool) {
	if len(p.Cells) == 0 {
		return Cell{}, false
	}
	return p.Cells[len(p.Cells)-1], true
}

// BuildPath orders the lit cells of the grid into a beam path, starting from
// the lit cell nearest the top-left corner.
func BuildPath(g Grid) Path {
	return BuildPathFrom(g, Cell{})
}

// BuildPathFrom orders the lit cells of the grid into a beam path, starting
// from the lit cell nearest start. Each following cell is the unvisited lit
// cell nearest to the current one, so the beam avoids long jumps. Ties are
// broken by row-major order, which keeps the result deterministic.
func BuildPathFrom(g Grid, start Cell) Path {
	lit := g.Lit()
	if len(lit) == 0 {
		return Path{}
	}
	ret := Path{
		Cells:  make([]Cell, 0, len(lit)),
		Points: make([]Point, 0, len(lit)),
	}
	visited := make([]bool, len(lit))
	cur := start
	for range lit {
		best := -1
		bestDist := 0
		// lit is in row-major order, so keeping the first strictly smaller
		// distance implements the tie-break
		for i, c := range lit {
			if visited[i] {
				continue
			}
			if d := distance2(cur, c); best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		visited[best] = true
		cur = lit[best]
		ret.Cells = append(ret.Cells, cur)
		ret.Points = append(ret.Points, cur.Point())
	}
	return ret
}

// distance2 is the squared distance between two cells in cell units. The
// mapping to display coordinates is a uniform scale, so comparing these
// integers orders cells exactly like the Euclidean point distance would.
func distance2(a, b Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr + dc*dc
}
