package outline

import (
	"errors"
	"testing"
)

func TestBPoints(t *testing.T) {
	c := blob()
	bps, err := BPoints(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(bps) != 4 {
		t.Fatalf("got %d bPoints, want 4", len(bps))
	}

	type handles struct {
		Anchor, In, Out Point
		Type            BPointType
	}
	var got []handles
	for _, bp := range bps {
		var h handles
		h.Anchor, _ = bp.Anchor()
		h.In, _ = bp.In()
		h.Out, _ = bp.Out()
		h.Type, _ = bp.Type()
		got = append(got, h)
	}
	want := []handles{
		{Pt(0, 0), Pt(0, 0), Pt(0, 0), CornerBPoint},
		{Pt(100, 0), Pt(100, 0), Pt(150, 0), CornerBPoint},
		{Pt(100, 100), Pt(150, 50), Pt(50, 150), CurveBPoint},
		{Pt(0, 50), Pt(0, 100), Pt(0, 50), CornerBPoint},
	}
	diff(t, want, got)

	in, _ := bps[2].BCPIn()
	out, _ := bps[2].BCPOut()
	diff(t, Vec(50, -50), in)
	diff(t, Vec(-50, 50), out)
}

func TestBPointStale(t *testing.T) {
	c := square()
	bps, err := BPoints(c)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Reverse(); err != nil {
		t.Fatal(err)
	}
	if _, err := bps[0].Anchor(); !errors.Is(err, ErrStaleView) {
		t.Errorf("got error %v, want ErrStaleView", err)
	}
	if err := bps[1].Move(Vec(1, 1)); !errors.Is(err, ErrStaleView) {
		t.Errorf("got error %v, want ErrStaleView", err)
	}
}

func TestBPointMove(t *testing.T) {
	c := blob()
	bps, _ := BPoints(c)
	bp := bps[2]
	if err := bp.Move(Vec(10, 0)); err != nil {
		t.Fatal(err)
	}
	want := blob().Nodes()
	for _, i := range []int{3, 4, 5} {
		want[i].Pos.X += 10
	}
	diff(t, want, c.Nodes())

	// the moving view stays valid, the others do not
	if anchor, err := bp.Anchor(); err != nil || anchor != Pt(110, 100) {
		t.Errorf("got (%v, %v), want (110, 100)", anchor, err)
	}
	if _, err := bps[0].Anchor(); !errors.Is(err, ErrStaleView) {
		t.Errorf("got error %v, want ErrStaleView", err)
	}

	if err := bp.SetAnchor(Pt(100, 100)); err != nil {
		t.Fatal(err)
	}
	diff(t, blob().Nodes(), c.Nodes())
}

func TestBPointSetHandles(t *testing.T) {
	c := square()
	bps, _ := BPoints(c)
	bp := bps[1]
	if err := bp.SetBCPIn(Vec(0, -5)); err != nil {
		t.Fatal(err)
	}
	if err := bp.SetBCPOut(Vec(0, 5)); err != nil {
		t.Fatal(err)
	}
	want := []Node{
		LineNode(Pt(0, 0)),
		OffNode(Pt(0, 0)),
		OffNode(Pt(10, -5)),
		CurveNode(Pt(10, 0)),
		OffNode(Pt(10, 5)),
		OffNode(Pt(10, 10)),
		CurveNode(Pt(10, 10)),
		LineNode(Pt(0, 10)),
	}
	diff(t, want, c.Nodes())
}

func TestBPointOpenEnds(t *testing.T) {
	c := NewContour(false, LineNode(Pt(0, 0)), LineNode(Pt(10, 0)))
	bps, _ := BPoints(c)
	if err := bps[0].SetBCPIn(Vec(1, 1)); !errors.Is(err, ErrSegmentType) {
		t.Errorf("got error %v, want ErrSegmentType", err)
	}
	if err := bps[1].SetBCPOut(Vec(1, 1)); !errors.Is(err, ErrSegmentType) {
		t.Errorf("got error %v, want ErrSegmentType", err)
	}
	if out, _ := bps[1].Out(); out != Pt(10, 0) {
		t.Errorf("got out handle %v, want the anchor", out)
	}
}
