package outline

import (
	"errors"
	"testing"
)

func TestContourPenOpen(t *testing.T) {
	c := NewContour(true, LineNode(Pt(5, 5)), LineNode(Pt(6, 6)), LineNode(Pt(7, 5)))
	pen := c.Pen()
	pen.MoveTo(Pt(0, 0))
	pen.LineTo(Pt(10, 0))
	pen.SetTangency(Smooth)
	pen.CurveTo(Pt(15, 0), Pt(20, 5), Pt(20, 10))
	pen.EndPath()
	if err := pen.Err(); err != nil {
		t.Fatal(err)
	}
	want := []Node{
		LineNode(Pt(0, 0)),
		LineNode(Pt(10, 0)),
		OffNode(Pt(15, 0)),
		OffNode(Pt(20, 5)),
		CurveNode(Pt(20, 10)).Smoothed(),
	}
	diff(t, want, c.Nodes())
	if c.Closed() {
		t.Error("contour is closed")
	}
}

func TestContourPenClose(t *testing.T) {
	t.Run("implicit closing line", func(t *testing.T) {
		c := NewContour(false)
		pen := c.Pen()
		pen.MoveTo(Pt(0, 0))
		pen.LineTo(Pt(10, 0))
		pen.LineTo(Pt(10, 10))
		pen.ClosePath()
		if err := pen.Err(); err != nil {
			t.Fatal(err)
		}
		diff(t, []Node{LineNode(Pt(0, 0)), LineNode(Pt(10, 0)), LineNode(Pt(10, 10))}, c.Nodes())
		if !c.Closed() {
			t.Error("contour is open")
		}
	})

	t.Run("explicit closing curve", func(t *testing.T) {
		c := NewContour(false)
		pen := c.Pen()
		pen.MoveTo(Pt(0, 0))
		pen.LineTo(Pt(10, 0))
		pen.CurveTo(Pt(10, 10), Pt(0, 10), Pt(0, 0))
		pen.ClosePath()
		if err := pen.Err(); err != nil {
			t.Fatal(err)
		}
		want := []Node{
			LineNode(Pt(10, 0)),
			OffNode(Pt(10, 10)),
			OffNode(Pt(0, 10)),
			CurveNode(Pt(0, 0)),
		}
		diff(t, want, c.Nodes())
	})
}

func TestContourPenImplicitMove(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		c := NewContour(false)
		pen := c.Pen()
		pen.LineTo(Pt(0, 0))
		pen.LineTo(Pt(10, 0))
		pen.EndPath()
		if err := pen.Err(); err != nil {
			t.Fatal(err)
		}
		diff(t, []Segment{MoveSegment(Pt(0, 0)), LineSegment(Pt(10, 0))}, mustBuild(t, c), segOpts)
	})

	t.Run("closed curve", func(t *testing.T) {
		c := NewContour(false)
		pen := c.Pen()
		pen.CurveTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
		pen.LineTo(Pt(0, 0))
		pen.ClosePath()
		if err := pen.Err(); err != nil {
			t.Fatal(err)
		}
		want := []Node{OffNode(Pt(0, 10)), OffNode(Pt(10, 10)), CurveNode(Pt(10, 0)), LineNode(Pt(0, 0))}
		diff(t, want, c.Nodes())
	})

	t.Run("open curve", func(t *testing.T) {
		c := square()
		pen := c.Pen()
		pen.CurveTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
		pen.EndPath()
		if err := pen.Err(); !errors.Is(err, ErrInvalidPenSequence) {
			t.Fatalf("got error %v, want ErrInvalidPenSequence", err)
		}
		diff(t, square().Nodes(), c.Nodes())
	})
}

func TestContourPenSequenceErrors(t *testing.T) {
	tests := []struct {
		name string
		draw func(p Pen)
		// whether a complete session was committed before the bad call
		committed bool
	}{
		{"curve after close", func(p Pen) {
			p.MoveTo(Pt(0, 0))
			p.LineTo(Pt(1, 0))
			p.LineTo(Pt(1, 1))
			p.ClosePath()
			p.CurveTo(Pt(0, 0), Pt(0, 0), Pt(0, 0))
		}, true},
		{"move after line", func(p Pen) {
			p.MoveTo(Pt(0, 0))
			p.LineTo(Pt(1, 0))
			p.MoveTo(Pt(5, 5))
			p.EndPath()
		}, false},
		{"close without drawing", func(p Pen) {
			p.ClosePath()
		}, false},
		{"end after end", func(p Pen) {
			p.MoveTo(Pt(0, 0))
			p.EndPath()
			p.EndPath()
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := square()
			pen := NewContourPen(c)
			tt.draw(pen)
			if err := pen.Err(); !errors.Is(err, ErrInvalidPenSequence) {
				t.Fatalf("got error %v, want ErrInvalidPenSequence", err)
			}
			if !tt.committed {
				diff(t, square().Nodes(), c.Nodes())
			}
		})
	}
}

func TestContourPenMalformedClose(t *testing.T) {
	c := square()
	pen := c.Pen()
	pen.MoveTo(Pt(0, 0))
	pen.LineTo(Pt(10, 0))
	pen.ClosePath()
	if err := pen.Err(); !errors.Is(err, ErrMalformedContour) {
		t.Fatalf("got error %v, want ErrMalformedContour", err)
	}
	diff(t, square().Nodes(), c.Nodes())
}

func TestTransformPen(t *testing.T) {
	c := NewContour(false)
	pen := NewTransformPen(c.Pen(), Translate(Vec(100, 0)))
	pen.MoveTo(Pt(0, 0))
	pen.SetTangency(Smooth)
	pen.LineTo(Pt(10, 0))
	pen.EndPath()
	diff(t, []Node{LineNode(Pt(100, 0)), LineNode(Pt(110, 0)).Smoothed()}, c.Nodes())
}

func TestGlyphPen(t *testing.T) {
	g := NewGlyph("test")
	pen := g.Pen()
	// two sessions, the first one ended implicitly by the second MoveTo
	pen.MoveTo(Pt(0, 0))
	pen.LineTo(Pt(10, 0))
	pen.MoveTo(Pt(0, 20))
	pen.LineTo(Pt(10, 20))
	pen.LineTo(Pt(10, 30))
	pen.ClosePath()
	// a failing session leaves nothing behind
	pen.MoveTo(Pt(50, 50))
	pen.LineTo(Pt(60, 50))
	failed := g.Contour(g.Len() - 1)
	pen.ClosePath()
	if err := pen.Close(); !errors.Is(err, ErrMalformedContour) {
		t.Fatalf("got error %v, want ErrMalformedContour", err)
	}
	if g.Len() != 2 {
		t.Fatalf("got %d contours, want 2", g.Len())
	}
	if failed.Glyph() != nil {
		t.Error("discarded contour still owned by glyph")
	}
	if g.Contour(0).Closed() || !g.Contour(1).Closed() {
		t.Error("contours have the wrong closed state")
	}
	for _, c := range g.Contours() {
		if c.Glyph() != g {
			t.Errorf("contour %v not owned by glyph", c)
		}
	}
}
