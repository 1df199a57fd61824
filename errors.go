package outline

import (
	"errors"
	"strconv"
)

var (
	// ErrMalformedContour is matched by errors reporting a node sequence that
	// violates the structure of cubic contours.
	ErrMalformedContour = errors.New("malformed contour")
	// ErrIndexOutOfRange is matched by errors reporting a segment or node
	// index outside the valid bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidPenSequence is returned when pen calls arrive out of order,
	// such as a CurveTo after ClosePath.
	ErrInvalidPenSequence = errors.New("invalid pen sequence")
	// ErrStaleView is returned when a [BPoint] is used after its contour has
	// been modified.
	ErrStaleView = errors.New("stale view of modified contour")
	// ErrSegmentType is returned by [SetSegmentType] for conversions that have
	// no meaning, such as turning a middle segment into a move.
	ErrSegmentType = errors.New("unsupported segment type conversion")
	// ErrComponentCycle is returned when a glyph references itself through
	// its components.
	ErrComponentCycle = errors.New("component cycle")
)

// MalformedContourError describes a structural problem found at a specific
// node.
type MalformedContourError struct {
	// Node is the index of the offending node, or -1 if the contour as a
	// whole is at fault.
	Node   int
	Reason string
}

func (err *MalformedContourError) Error() string {
	if err.Node < 0 {
		return "malformed contour: " + err.Reason
	}
	return "malformed contour: " + err.Reason + " (at node " + strconv.Itoa(err.Node) + ")"
}

func (err *MalformedContourError) Is(target error) bool {
	return target == ErrMalformedContour
}

func malformed(node int, reason string) error {
	return &MalformedContourError{Node: node, Reason: reason}
}

// IndexError reports an index outside [0, Len).
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return err.What + " index " + strconv.Itoa(err.Index) + " out of range [0, " + strconv.Itoa(err.Len) + ")"
}

func (err *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func checkIndex(what string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{What: what, Index: i, Len: n}
	}
	return nil
}
