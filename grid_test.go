package vectorscope_test

import (
	"testing"

	"github.com/NaFo44/vectorscope"
)

func TestCellPoint(t *testing.T) {
	for _, c := range []struct {
		cell vectorscope.Cell
		want vectorscope.Point
	}{
		{vectorscope.Cell{Row: 0, Col: 0}, vectorscope.Point{X: -1, Y: 1}},
		{vectorscope.Cell{Row: 15, Col: 15}, vectorscope.Point{X: 1, Y: -1}},
		{vectorscope.Cell{Row: 0, Col: 15}, vectorscope.Point{X: 1, Y: 1}},
		{vectorscope.Cell{Row: 15, Col: 0}, vectorscope.Point{X: -1, Y: -1}},
	} {
		if got := c.cell.Point(); got != c.want {
			t.Errorf("cell %v mapped to %v, expected %v", c.cell, got, c.want)
		}
	}
}

func TestCellPointSymmetricAroundOrigin(t *testing.T) {
	a := vectorscope.Cell{Row: 7, Col: 7}.Point()
	b := vectorscope.Cell{Row: 8, Col: 8}.Point()
	if a.X != -b.X || a.Y != -b.Y {
		t.Fatalf("cells (7,7) and (8,8) are not symmetric: %v vs %v", a, b)
	}
	if a.X >= 0 || a.Y <= 0 {
		t.Fatalf("cell (7,7) should be up-left of the origin, got %v", a)
	}
}

func TestGridToggleAndBounds(t *testing.T) {
	var g vectorscope.Grid
	c := vectorscope.Cell{Row: 3, Col: 4}
	if !g.Toggle(c) {
		t.Fatal("first toggle should light the cell")
	}
	if !g.Get(c) || g.Count() != 1 {
		t.Fatalf("expected exactly cell %v lit, got %d lit", c, g.Count())
	}
	if g.Toggle(c) {
		t.Fatal("second toggle should switch the cell off")
	}
	for _, out := range []vectorscope.Cell{{Row: -1}, {Col: 16}, {Row: 16, Col: 16}} {
		g.Set(out, true)
		if g.Toggle(out) || g.Get(out) {
			t.Errorf("out of range cell %v should always read as off", out)
		}
	}
	if !g.Empty() {
		t.Fatalf("out of range writes modified the grid:\n%v", g)
	}
}

func TestGridLitIsRowMajor(t *testing.T) {
	var g vectorscope.Grid
	g.Set(vectorscope.Cell{Row: 2, Col: 1}, true)
	g.Set(vectorscope.Cell{Row: 0, Col: 9}, true)
	g.Set(vectorscope.Cell{Row: 2, Col: 0}, true)
	lit := g.Lit()
	want := []vectorscope.Cell{{Row: 0, Col: 9}, {Row: 2, Col: 0}, {Row: 2, Col: 1}}
	if len(lit) != len(want) {
		t.Fatalf("got %v lit cells, expected %v", lit, want)
	}
	for i := range want {
		if lit[i] != want[i] {
			t.Fatalf("lit cell %d is %v, expected %v", i, lit[i], want[i])
		}
	}
	g.Clear()
	if !g.Empty() {
		t.Fatal("Clear left cells lit")
	}
}
