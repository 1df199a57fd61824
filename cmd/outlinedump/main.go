// Command outlinedump prints the nodes and segments of a glyph loaded from a
// TrueType or OpenType font, optionally after editing it.
//
// Usage:
//
//	outlinedump [options] [font.ttf]
//
// Without a font file the Go Regular font is used.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/outline"
	"honnef.co/go/outline/cffglyph"
	"honnef.co/go/outline/raster"
	"honnef.co/go/outline/sfntload"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("outlinedump: ")

	char := flag.String("rune", "a", "character whose glyph is shown")
	size := flag.Float64("size", 0, "em size to scale the outline to (0: font units)")
	contour := flag.Int("contour", -1, "index of the contour to edit (-1: all)")
	start := flag.Int("start", 0, "segment index to make the start of each edited closed contour")
	reverse := flag.Bool("reverse", false, "reverse the direction of the edited contours")
	showCFF := flag.Bool("cff", false, "also print the outline as CFF charstring operations")
	pngFile := flag.String("png", "", "write a preview image to this file")
	scale := flag.Float64("scale", 0.25, "pixels per unit of the preview image")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [font.ttf]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	data := goregular.TTF
	if flag.NArg() > 0 {
		var err error
		data, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	}
	r, n := utf8.DecodeRuneInString(*char)
	if n == 0 || n != len(*char) {
		log.Fatalf("-rune needs a single character, got %q", *char)
	}

	f, err := sfntload.Parse(data)
	if err != nil {
		log.Fatal(err)
	}
	g, err := f.LoadRune(r, &sfntload.Options{Size: *size})
	if err != nil {
		log.Fatal(err)
	}

	for i, c := range g.Contours() {
		if *contour >= 0 && i != *contour {
			continue
		}
		if err := edit(c, *start, *reverse); err != nil {
			log.Fatalf("contour %d: %v", i, err)
		}
	}

	fmt.Printf("%v, width %g, %g units per em\n", g, g.Width, f.UnitsPerEm())
	if family := f.Family(); family != "" {
		fmt.Printf("font %s\n", family)
	}
	for i, c := range g.Contours() {
		if err := dump(i, c); err != nil {
			log.Fatalf("contour %d: %v", i, err)
		}
	}

	if *showCFF {
		cg, err := cffglyph.Export(g, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		for _, cmd := range cg.Cmds {
			fmt.Printf("%s %v\n", cmd.Op, cmd.Args)
		}
	}

	if *pngFile != "" {
		img, err := raster.Render(g, &raster.Options{Scale: *scale, Padding: 4})
		if err != nil {
			log.Fatal(err)
		}
		out, err := os.Create(*pngFile)
		if err != nil {
			log.Fatal(err)
		}
		if err := png.Encode(out, img); err != nil {
			out.Close()
			log.Fatal(err)
		}
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

func edit(c *outline.Contour, start int, reverse bool) error {
	if reverse {
		if err := outline.Reverse(c); err != nil {
			return err
		}
	}
	if start != 0 && c.Closed() {
		return outline.SetStartSegment(c, start)
	}
	return nil
}

func dump(i int, c *outline.Contour) error {
	segs, err := outline.Build(c)
	if err != nil {
		return err
	}
	area, err := outline.SignedArea(c)
	if err != nil {
		return err
	}
	dir := "counter-clockwise"
	if area < 0 {
		dir = "clockwise"
	}

	fmt.Printf("\ncontour %d: %v, %s\n", i, c, dir)
	fmt.Println("nodes:")
	for j, n := range c.Nodes() {
		fmt.Printf("  %3d %v\n", j, n)
	}
	fmt.Println("segments:")
	for j, s := range segs {
		fmt.Printf("  %3d node %3d %v\n", j, s.NodeIndex(), s)
	}
	return nil
}
