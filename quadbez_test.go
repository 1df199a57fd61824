package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func (q QuadBez) eval(t float64) Point {
	return q.P0.Lerp(q.P1, t).Lerp(q.P1.Lerp(q.P2, t), t)
}

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	const epsilon = 1e-12
	const n = 10

	diff(t, q.P0, c.P0)
	diff(t, q.P2, c.P3)
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		diff(t, q.eval(ts), c.Eval(ts), cmpopts.EquateApprox(0, epsilon))
	}
}
