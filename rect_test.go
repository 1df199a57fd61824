package outline

import "testing"

func TestRectAbs(t *testing.T) {
	r := Rect{10, 10, 0, 0}
	if r.Width() != -10 || r.Height() != -10 {
		t.Errorf("got size %gx%g, want -10x-10", r.Width(), r.Height())
	}
	diff(t, Rect{0, 0, 10, 10}, r.Abs())
	diff(t, Rect{0, 0, 10, 10}, NewRectFromPoints(Pt(10, 0), Pt(0, 10)))
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{-5, 0, 10, 20}, r.Union(Rect{-5, 5, 2, 20}))
	diff(t, Rect{0, -1, 12, 10}, r.UnionPoint(Pt(12, -1)))
	diff(t, r, r.UnionPoint(Pt(5, 5)))

	// the empty rectangle is the identity of Union
	diff(t, r, emptyRect.Union(r))
	diff(t, Rect{3, 4, 3, 4}, emptyRect.UnionPoint(Pt(3, 4)))
	if !emptyRect.isEmpty() || r.isEmpty() {
		t.Error("isEmpty is wrong")
	}
}

func TestRectIsZeroArea(t *testing.T) {
	if !(Rect{0, 0, 10, 0}).IsZeroArea() {
		t.Error("flat rectangle has area")
	}
	if (Rect{0, 0, 10, 1}).IsZeroArea() {
		t.Error("rectangle has no area")
	}
}
