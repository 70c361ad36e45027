package domain

import (
	"fmt"
	"strings"
)

// RangeAddress is the normalised in-memory form of a sheet range: an
// optional sheet name plus optional half-open row and column intervals.
// A nil interval means that axis is unspecified, which covers the whole
// axis; both intervals nil denotes the entire sheet. Values are immutable
// once constructed.
//
// The sheet name is always stored unquoted. Quotes are applied on render
// only when the name needs them, and stripped on parse.
type RangeAddress struct {
	Sheet string
	Rows  *Interval
	Cols  *Interval
}

// WholeSheet returns the address of an entire named sheet.
func WholeSheet(sheet string) RangeAddress {
	return RangeAddress{Sheet: sheet}
}

// HeaderAddress returns the address of a sheet's first row, the conventional
// home of column headers.
func HeaderAddress(sheet string) RangeAddress {
	rows := NewInterval(1, 2)
	return RangeAddress{Sheet: sheet, Rows: &rows}
}

// sheetNeedsQuoting reports whether a sheet name must be quoted in A1 text.
func sheetNeedsQuoting(name string) bool {
	return strings.ContainsAny(name, " \t'!:")
}

// renderSheet quotes the sheet name when required, doubling embedded quotes.
func renderSheet(name string) string {
	if !sheetNeedsQuoting(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// axisUnspecified treats a full open interval [1, EndOfAxis) the same as a
// nil interval: both cover the whole axis, and collapsing them keeps the
// canonical string unique.
func axisUnspecified(iv *Interval) bool {
	return iv == nil || (iv.Start == 1 && !iv.Bounded())
}

// String renders the canonical A1 form of the address.
//
// Open stops are rendered as open A1 forms ("A5:A", "A:A"); when every stop
// component is open the body collapses to the bare start token ("C2"), which
// in A1 notation anchors an open-ended range at that cell. A whole-sheet
// address renders as just the (possibly quoted) sheet name.
func (a RangeAddress) String() string {
	body := a.body()
	sheet := ""
	if a.Sheet != "" {
		sheet = renderSheet(a.Sheet)
	}
	switch {
	case sheet == "":
		return body
	case body == "":
		return sheet
	default:
		return sheet + "!" + body
	}
}

func (a RangeAddress) body() string {
	if axisUnspecified(a.Rows) && axisUnspecified(a.Cols) {
		return ""
	}

	var startRow, startCol, stopRow, stopCol int
	if !axisUnspecified(a.Rows) {
		startRow = a.Rows.Start
		if a.Rows.Bounded() {
			// Internal intervals are half-open; A1 stops are inclusive.
			stopRow = a.Rows.Stop - 1
		}
	}
	if !axisUnspecified(a.Cols) {
		startCol = a.Cols.Start
		if a.Cols.Bounded() {
			stopCol = a.Cols.Stop - 1
		}
	}

	start := FormatCell(startRow, startCol)
	stop := FormatCell(stopRow, stopCol)
	if stop == "" {
		return start
	}
	return start + ":" + stop
}

// Key returns the canonical string, suitable for use as a map key. Two
// addresses are interchangeable as keys iff their canonical strings match.
func (a RangeAddress) Key() string {
	return a.String()
}

// Equal compares addresses by canonical string.
func (a RangeAddress) Equal(b RangeAddress) bool {
	return a.Key() == b.Key()
}

// WithShape resolves open-ended intervals against the sheet shape and
// returns the resolved address. Resolution changes the canonical string, so
// shape-less and shape-resolved addresses are distinct keys.
func (a RangeAddress) WithShape(shape SheetShape) RangeAddress {
	out := RangeAddress{Sheet: a.Sheet}
	if a.Rows != nil {
		rows := a.Rows.Resolve(shape.RowCount)
		out.Rows = &rows
	}
	if a.Cols != nil {
		cols := a.Cols.Resolve(shape.ColumnCount)
		out.Cols = &cols
	}
	return out
}

// Slice restricts the address by a further slice expression, with this
// address's own intervals acting as the effective shape: child indices are
// relative to the parent, so negative and open child indices resolve against
// the parent's extents. Slicing is composable.
func (a RangeAddress) Slice(parts ...Index) (RangeAddress, error) {
	shape := SheetShape{
		RowCount:    axisExtent(a.Rows),
		ColumnCount: axisExtent(a.Cols),
	}
	child, err := ResolveSlice(shape, parts...)
	if err != nil {
		return RangeAddress{}, err
	}
	if child.Sheet != "" {
		return RangeAddress{}, fmt.Errorf("%w: sheet name %q in sub-slice", ErrInvalidSliceShape, child.Sheet)
	}

	out := RangeAddress{Sheet: a.Sheet}
	if out.Rows, err = rebaseAxis(a.Rows, child.Rows); err != nil {
		return RangeAddress{}, err
	}
	if out.Cols, err = rebaseAxis(a.Cols, child.Cols); err != nil {
		return RangeAddress{}, err
	}
	return out, nil
}

// axisExtent is the length of a bounded parent interval, or 0 (unknown) for
// nil and open-ended parents.
func axisExtent(iv *Interval) int {
	if iv == nil || !iv.Bounded() {
		return 0
	}
	return iv.Len()
}

func rebaseAxis(parent, child *Interval) (*Interval, error) {
	switch {
	case child == nil:
		return parent, nil
	case parent == nil:
		// Parent covers the whole axis, so child positions are absolute.
		c := *child
		return &c, nil
	default:
		r := parent.Rebase(*child)
		// A child start past a bounded parent's extent leaves an empty or
		// inverted interval after the stop is clamped, which has no A1 form.
		if r.Bounded() && r.Stop <= r.Start {
			return nil, fmt.Errorf("%w: position %d past the parent extent", ErrInvalidSliceShape, child.Start)
		}
		return &r, nil
	}
}
