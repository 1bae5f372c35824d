package vectorscope_test

import (
	"reflect"
	"testing"

	"github.com/NaFo44/vectorscope"
)

func gridOf(cells ...vectorscope.Cell) vectorscope.Grid {
	var g vectorscope.Grid
	for _, c := range cells {
		g.Set(c, true)
	}
	return g
}

func TestBuildPathEmpty(t *testing.T) {
	p := vectorscope.BuildPath(vectorscope.Grid{})
	if !p.Empty() || p.Len() != 0 {
		t.Fatalf("expected the empty path, got %v", p)
	}
	if _, ok := p.Last(); ok {
		t.Fatal("the empty path should have no last cell")
	}
}

func TestBuildPathOrder(t *testing.T) {
	for _, c := range []struct {
		name  string
		grid  vectorscope.Grid
		start vectorscope.Cell
		want  []vectorscope.Cell
	}{
		{
			name:  "nearest neighbour",
			grid:  gridOf(vectorscope.Cell{Row: 0, Col: 5}, vectorscope.Cell{Row: 0, Col: 0}, vectorscope.Cell{Row: 0, Col: 1}),
			start: vectorscope.Cell{},
			want:  []vectorscope.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 5}},
		},
		{
			name:  "starts nearest top-left",
			grid:  gridOf(vectorscope.Cell{Row: 15, Col: 15}, vectorscope.Cell{Row: 0, Col: 15}),
			start: vectorscope.Cell{},
			want:  []vectorscope.Cell{{Row: 0, Col: 15}, {Row: 15, Col: 15}},
		},
		{
			name:  "tie broken by row-major order",
			grid:  gridOf(vectorscope.Cell{Row: 6, Col: 5}, vectorscope.Cell{Row: 4, Col: 5}),
			start: vectorscope.Cell{Row: 5, Col: 5},
			want:  []vectorscope.Cell{{Row: 4, Col: 5}, {Row: 6, Col: 5}},
		},
		{
			name:  "starts from previous frame",
			grid:  gridOf(vectorscope.Cell{Row: 0, Col: 0}, vectorscope.Cell{Row: 14, Col: 14}, vectorscope.Cell{Row: 7, Col: 7}),
			start: vectorscope.Cell{Row: 15, Col: 15},
			want:  []vectorscope.Cell{{Row: 14, Col: 14}, {Row: 7, Col: 7}, {Row: 0, Col: 0}},
		},
	} {
		t.Run(c.name, func(t *testing.T) {
			p := vectorscope.BuildPathFrom(c.grid, c.start)
			if !reflect.DeepEqual(p.Cells, c.want) {
				t.Fatalf("got path %v, expected %v", p.Cells, c.want)
			}
			for i, cell := range p.Cells {
				if p.Points[i] != cell.Point() {
					t.Fatalf("point %d is %v, expected %v", i, p.Points[i], cell.Point())
				}
			}
		})
	}
}

func TestBuildPathVisitsEveryLitCellOnce(t *testing.T) {
	var g vectorscope.Grid
	for r := 0; r < vectorscope.GridSize; r++ {
		for c := 0; c < vectorscope.GridSize; c++ {
			if (r*7+c*3)%5 == 0 {
				g[r][c] = true
			}
		}
	}
	p := vectorscope.BuildPath(g)
	if p.Len() != g.Count() {
		t.Fatalf("path has %d points, grid has %d lit cells", p.Len(), g.Count())
	}
	seen := map[vectorscope.Cell]bool{}
	for _, c := range p.Cells {
		if !g.Get(c) {
			t.Fatalf("path visits unlit cell %v", c)
		}
		if seen[c] {
			t.Fatalf("path visits %v twice", c)
		}
		seen[c] = true
	}
	if q := vectorscope.BuildPath(g); !reflect.DeepEqual(p, q) {
		t.Fatal("BuildPath is not deterministic")
	}
}
