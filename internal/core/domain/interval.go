package domain

import "fmt"

// EndOfAxis marks an Interval whose stop extends to the end of its axis.
// The actual bound is only known once a SheetShape is supplied.
const EndOfAxis = -1

// Interval is a half-open [Start, Stop) span of 1-indexed positions along
// one sheet axis. A Stop of EndOfAxis means the span is open-ended.
// Invariants: Start >= 1, and Start <= Stop when the stop is bounded.
type Interval struct {
	Start int
	Stop  int
}

// NewInterval constructs a bounded half-open interval.
func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop}
}

// OpenInterval constructs an interval from start through the end of the axis.
func OpenInterval(start int) Interval {
	return Interval{Start: start, Stop: EndOfAxis}
}

// Bounded reports whether the interval has a terminated stop.
func (iv Interval) Bounded() bool {
	return iv.Stop != EndOfAxis
}

// Empty reports whether the interval covers no positions.
func (iv Interval) Empty() bool {
	return iv.Bounded() && iv.Stop <= iv.Start
}

// Len returns the number of positions covered, or -1 when open-ended.
func (iv Interval) Len() int {
	if !iv.Bounded() {
		return -1
	}
	if iv.Stop <= iv.Start {
		return 0
	}
	return iv.Stop - iv.Start
}

// Resolve closes an open stop against the axis extent, which is taken as the
// exclusive stop. Bounded intervals and unknown extents pass through
// unchanged.
func (iv Interval) Resolve(extent int) Interval {
	if iv.Bounded() || extent < 1 {
		return iv
	}
	return Interval{Start: iv.Start, Stop: extent}
}

// Rebase maps a child interval expressed relative to this interval (1 is
// this interval's first position) onto absolute positions. An open child
// stop inherits this interval's stop; a bounded child stop is clamped so the
// result never extends past the parent.
func (iv Interval) Rebase(child Interval) Interval {
	start := iv.Start + child.Start - 1
	if !child.Bounded() {
		return Interval{Start: start, Stop: iv.Stop}
	}
	stop := iv.Start + child.Stop - 1
	if iv.Bounded() && stop > iv.Stop {
		stop = iv.Stop
	}
	return Interval{Start: start, Stop: stop}
}

// Validate checks the interval invariants.
func (iv Interval) Validate() error {
	if iv.Start < 1 {
		return fmt.Errorf("%w: interval start %d below 1", ErrInvalidAddress, iv.Start)
	}
	if iv.Bounded() && iv.Stop < iv.Start {
		return fmt.Errorf("%w: interval [%d, %d) is inverted", ErrInvalidAddress, iv.Start, iv.Stop)
	}
	return nil
}
