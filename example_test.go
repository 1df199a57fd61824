package outline_test

import (
	"fmt"

	"honnef.co/go/outline"
)

func ExampleBuild() {
	c := outline.NewContour(true,
		outline.OffNode(outline.Pt(0, 100)),
		outline.OffNode(outline.Pt(100, 100)),
		outline.CurveNode(outline.Pt(100, 0)),
		outline.LineNode(outline.Pt(0, 0)),
	)
	segs, err := outline.Build(c)
	if err != nil {
		panic(err)
	}
	for _, s := range segs {
		fmt.Println(s)
	}
	// Output:
	// curve((0, 100), (100, 100), (100, 0))
	// line((0, 0))
}

func ExampleSetStartSegment() {
	c := outline.NewContour(true,
		outline.LineNode(outline.Pt(0, 0)),
		outline.LineNode(outline.Pt(10, 0)),
		outline.LineNode(outline.Pt(10, 10)),
	)
	if err := outline.SetStartSegment(c, 2); err != nil {
		panic(err)
	}
	for _, n := range c.Nodes() {
		fmt.Println(n)
	}
	// Output:
	// (10, 10) line
	// (0, 0) line
	// (10, 0) line
}

func ExampleContourPen() {
	c := outline.NewContour(false)
	pen := outline.NewContourPen(c)
	pen.MoveTo(outline.Pt(0, 0))
	pen.LineTo(outline.Pt(50, 0))
	pen.SetTangency(outline.Smooth)
	pen.CurveTo(outline.Pt(80, 0), outline.Pt(80, 50), outline.Pt(50, 50))
	pen.ClosePath()
	if err := pen.Err(); err != nil {
		panic(err)
	}
	fmt.Println(c)
	for _, n := range c.Nodes() {
		fmt.Println(n)
	}
	// Output:
	// <Contour closed with 5 nodes>
	// (0, 0) line
	// (50, 0) line
	// (80, 0) offcurve
	// (80, 50) offcurve
	// (50, 50) curve smooth
}

func ExampleGlyph_DecomposeComponent() {
	f := outline.NewFont(1000)
	dot := f.NewGlyph("dot")
	dot.AppendContour(outline.NewContour(true,
		outline.LineNode(outline.Pt(0, 0)),
		outline.LineNode(outline.Pt(10, 0)),
		outline.LineNode(outline.Pt(10, 10)),
		outline.LineNode(outline.Pt(0, 10)),
	))
	colon := f.NewGlyph("colon")
	colon.AppendComponent("dot", outline.Vec(0, 0), outline.Vec(1, 1))
	colon.AppendComponent("dot", outline.Vec(0, 40), outline.Vec(1, 1))
	if err := colon.Decompose(f); err != nil {
		panic(err)
	}
	fmt.Println(colon)
	bbox, _ := colon.BoundingBox()
	fmt.Println(bbox)
	// Output:
	// <Glyph "colon" with 2 contours, 0 components>
	// {0 0 10 50}
}
