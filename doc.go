// Package outline models glyph outlines the way font editors store them and
// converts them to and from drawing instructions.
//
// # Nodes and segments
//
// A [Contour] is a sequence of [Node] values plus a closed flag. Nodes are
// on-curve points ending a line ([OnLine]) or a cubic Bézier ([OnCurve]), or
// off-curve control points ([OffCurve]). Every curve node is preceded by
// exactly two control points. In closed contours the sequence is circular,
// and the control points of the first curve may be stored at the end of the
// array.
//
// The node sequence is the system of record. [Build] derives a list of
// [Segment] values from it, one per on-curve node, plus a leading Move
// segment for open contours. Segments are snapshots: they do not track
// later changes to the contour.
//
// # Pens
//
// The opposite direction is the [Pen] protocol. [Draw] replays a contour
// into any pen, and a [ContourPen] rewrites a contour from pen calls. Pens
// compose: [TransformPen] transforms points on their way through, a
// [GlyphPen] collects many contours into a [Glyph], and [BezPath] records
// the calls as a plain path. Pens that also implement [TangencyPen] learn
// which on-curve points are smooth.
//
// Rewrites are all-or-nothing. A ContourPen buffers the new nodes and only
// replaces the old ones once a complete, well-formed contour has been drawn.
//
// # Editing
//
// Higher-level operations such as [Reverse], [SetStartSegment],
// [SetSegmentType], [InsertSegment], [SplitSegment] and [DecomposeContour]
// are expressed on segment lists and implemented as full rewrites. They operate on the
// [NodeStore] interface, so they can edit any host's node storage, not just
// this package's Contour.
//
// [BPoint] views a segment as an anchor with two handles, for interactive
// editing. Views are invalidated by any other change to their contour.
//
// # Glyphs and fonts
//
// A [Glyph] owns its contours and references other glyphs through
// components. Components are resolved through a [GlyphSource], usually a
// [Font], when decomposing or drawing.
//
// The subpackages connect outlines to other representations: sfntload reads
// them from TrueType and OpenType fonts, geompath and cffglyph convert to
// and from other libraries' path types, and raster renders them to images.
package outline
