package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// segOpts compares segments by their public fields only.
var segOpts = cmp.Options{cmpopts.IgnoreUnexported(Segment{}), cmpopts.EquateEmpty()}

func mustBuild(t *testing.T, c NodeReader) []Segment {
	t.Helper()
	segs, err := Build(c)
	if err != nil {
		t.Fatalf("Build: %s", err)
	}
	return segs
}

// square is the closed unit square scaled by 10, counter-clockwise.
func square() *Contour {
	return NewContour(true,
		LineNode(Pt(0, 0)),
		LineNode(Pt(10, 0)),
		LineNode(Pt(10, 10)),
		LineNode(Pt(0, 10)),
	)
}

// blob is a closed contour mixing lines and curves, with a smooth node.
func blob() *Contour {
	return NewContour(true,
		LineNode(Pt(0, 0)),
		LineNode(Pt(100, 0)),
		OffNode(Pt(150, 0)),
		OffNode(Pt(150, 50)),
		CurveNode(Pt(100, 100)).Smoothed(),
		OffNode(Pt(50, 150)),
		OffNode(Pt(0, 100)),
		CurveNode(Pt(0, 50)),
	)
}
