package outline

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
}
