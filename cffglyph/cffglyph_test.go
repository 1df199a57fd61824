package cffglyph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/cff"

	"honnef.co/go/outline"
)

func diff(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func testGlyph() *outline.Glyph {
	g := outline.NewGlyph("A")
	g.Width = 600
	g.AppendContour(outline.NewContour(true,
		outline.LineNode(outline.Pt(0, 0)),
		outline.LineNode(outline.Pt(10, 0)),
		outline.LineNode(outline.Pt(10, 10)),
		outline.LineNode(outline.Pt(0, 10)),
	))
	g.AppendContour(outline.NewContour(true,
		outline.OffNode(outline.Pt(0, 50)),
		outline.OffNode(outline.Pt(50, 50)),
		outline.CurveNode(outline.Pt(50, 0)),
		outline.LineNode(outline.Pt(0, 0)),
	))
	return g
}

func TestExport(t *testing.T) {
	cg, err := Export(testGlyph(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cg.Name != "A" || cg.Width != 600 {
		t.Errorf("got name %q and width %g", cg.Name, cg.Width)
	}
	want := []cff.GlyphOp{
		// closing lines are implied
		{Op: cff.OpMoveTo, Args: []float64{0, 10}},
		{Op: cff.OpLineTo, Args: []float64{0, 0}},
		{Op: cff.OpLineTo, Args: []float64{10, 0}},
		{Op: cff.OpLineTo, Args: []float64{10, 10}},
		{Op: cff.OpMoveTo, Args: []float64{0, 0}},
		{Op: cff.OpCurveTo, Args: []float64{0, 50, 50, 50, 50, 0}},
	}
	diff(t, want, cg.Cmds)
}

func TestExportOpen(t *testing.T) {
	g := outline.NewGlyph("bar")
	g.AppendContour(outline.NewContour(false, outline.LineNode(outline.Pt(0, 0)), outline.LineNode(outline.Pt(5, 5))))
	if _, err := Export(g, nil); !errors.Is(err, ErrOpenContour) {
		t.Errorf("got error %v, want ErrOpenContour", err)
	}
}

func TestExportComponents(t *testing.T) {
	f := outline.NewFont(1000)
	f.InsertGlyph(testGlyph())
	g := f.NewGlyph("Aring")
	g.AppendComponent("A", outline.Vec(0, 100), outline.Vec(1, 1))

	cg, err := Export(g, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(cg.Cmds) != 6 {
		t.Fatalf("got %d commands, want 6", len(cg.Cmds))
	}
	diff(t, cff.GlyphOp{Op: cff.OpMoveTo, Args: []float64{0, 110}}, cg.Cmds[0])
}

func TestImport(t *testing.T) {
	cg := cff.NewGlyph("A", 600)
	cg.MoveTo(5, 5)
	cg.MoveTo(0, 10)
	cg.LineTo(0, 0)
	cg.LineTo(10, 0)
	cg.LineTo(10, 10)
	cg.MoveTo(0, 0)
	cg.CurveTo(0, 50, 50, 50, 50, 0)
	cg.LineTo(0, 0)

	g, err := Import(cg)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "A" || g.Width != 600 {
		t.Errorf("got name %q and width %g", g.Name, g.Width)
	}
	if g.Len() != 2 {
		t.Fatalf("got %d contours, want 2", g.Len())
	}
	diff(t, []outline.Node{
		outline.LineNode(outline.Pt(0, 10)),
		outline.LineNode(outline.Pt(0, 0)),
		outline.LineNode(outline.Pt(10, 0)),
		outline.LineNode(outline.Pt(10, 10)),
	}, g.Contour(0).Nodes())
	// an explicit return to the start point replaces the move node
	diff(t, []outline.Node{
		outline.OffNode(outline.Pt(0, 50)),
		outline.OffNode(outline.Pt(50, 50)),
		outline.CurveNode(outline.Pt(50, 0)),
		outline.LineNode(outline.Pt(0, 0)),
	}, g.Contour(1).Nodes())
	for _, c := range g.Contours() {
		if !c.Closed() {
			t.Errorf("contour %v is open", c)
		}
	}
}

func TestImportErrors(t *testing.T) {
	cg := &cff.Glyph{Name: "x", Cmds: []cff.GlyphOp{{Op: cff.OpLineTo, Args: []float64{1, 1}}}}
	if _, err := Import(cg); err == nil {
		t.Error("importing a line without moveto succeeded")
	}

	cg = cff.NewGlyph("y", 0)
	cg.MoveTo(0, 0)
	cg.LineTo(0, 0)
	if _, err := Import(cg); !errors.Is(err, outline.ErrMalformedContour) {
		t.Errorf("got error %v, want ErrMalformedContour", err)
	}
}
