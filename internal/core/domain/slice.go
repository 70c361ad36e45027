package domain

import "fmt"

// Index is one component of a slice expression: a sheet name, the entire-
// axis marker, or a single-axis position or span. The concrete variants are
// constructed with At, Span, From, Until, All, Col, Sheet and Str, and an
// explicit resolver handles each variant, so resolution is exhaustive over
// the closed set.
type Index interface {
	isIndex()
}

type singleIndex struct{ pos int }

type rangeIndex struct {
	start, stop       int
	hasStart, hasStop bool
}

type entireAxis struct{}

type columnLabel struct{ letters string }

type sheetIndex struct{ name string }

func (singleIndex) isIndex() {}
func (rangeIndex) isIndex()  {}
func (entireAxis) isIndex()  {}
func (columnLabel) isIndex() {}
func (sheetIndex) isIndex()  {}

// At denotes the single 1-indexed position i. Negative values count from the
// end of the axis, -1 being the last position; resolving them requires a
// known SheetShape.
func At(i int) Index { return singleIndex{pos: i} }

// Span denotes the half-open span [start, stop). The stop is exclusive,
// matching the internal Interval convention. Negative endpoints count from
// the end of the axis.
func Span(start, stop int) Index {
	return rangeIndex{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From denotes the open-ended span from start through the end of the axis.
func From(start int) Index { return rangeIndex{start: start, hasStart: true} }

// Until denotes the span [1, stop) from the start of the axis.
func Until(stop int) Index { return rangeIndex{stop: stop, hasStop: true} }

// All is the entire-axis marker.
var All Index = entireAxis{}

// Col denotes a column by its A1 letters ("A", "AZ").
func Col(letters string) Index { return columnLabel{letters: letters} }

// Sheet denotes the sheet-name component of a slice expression.
func Sheet(name string) Index { return sheetIndex{name: name} }

// Str classifies a raw string: a valid column-letter token is a column
// label, anything else is a sheet name.
func Str(s string) Index {
	if _, err := LettersToColumn(s); err == nil {
		return Col(s)
	}
	return Sheet(s)
}

// ResolveSlice normalises a slice expression into a RangeAddress. The parts
// are positional: an optional leading Sheet, then up to two axis specs in
// (row, col) order. A single non-label axis spec binds to the row axis; a
// single column label binds to the column axis. Open ends stay open-ended
// and are only resolved against a shape at render or comparison time.
func ResolveSlice(shape SheetShape, parts ...Index) (RangeAddress, error) {
	addr := RangeAddress{}
	axes := make([]Index, 0, 2)
	for i, part := range parts {
		if sh, ok := part.(sheetIndex); ok {
			if i != 0 {
				return RangeAddress{}, fmt.Errorf("%w: sheet name %q after axis specs", ErrAmbiguousSheetReference, sh.name)
			}
			addr.Sheet = sh.name
			continue
		}
		axes = append(axes, part)
	}
	if len(axes) > 2 {
		return RangeAddress{}, fmt.Errorf("%w: %d axis specs, want at most 2", ErrInvalidSliceShape, len(axes))
	}

	var rowSpec, colSpec Index
	switch len(axes) {
	case 0:
		return addr, nil
	case 1:
		if _, ok := axes[0].(columnLabel); ok {
			colSpec = axes[0]
		} else {
			rowSpec = axes[0]
		}
	case 2:
		if _, ok := axes[0].(columnLabel); ok {
			return RangeAddress{}, fmt.Errorf("%w: column label in row position", ErrInvalidSliceShape)
		}
		rowSpec, colSpec = axes[0], axes[1]
	}

	var err error
	if rowSpec != nil {
		if addr.Rows, err = resolveAxis(rowSpec, shape.RowCount); err != nil {
			return RangeAddress{}, err
		}
	}
	if colSpec != nil {
		if addr.Cols, err = resolveAxis(colSpec, shape.ColumnCount); err != nil {
			return RangeAddress{}, err
		}
	}
	return addr, nil
}

// resolveAxis normalises one axis spec to a half-open interval. A nil result
// means the spec covers the whole axis.
func resolveAxis(spec Index, extent int) (*Interval, error) {
	switch v := spec.(type) {
	case entireAxis:
		return nil, nil
	case singleIndex:
		pos, err := absolutePosition(v.pos, extent)
		if err != nil {
			return nil, err
		}
		iv := NewInterval(pos, pos+1)
		return &iv, nil
	case columnLabel:
		col, err := LettersToColumn(v.letters)
		if err != nil {
			return nil, err
		}
		iv := NewInterval(col, col+1)
		return &iv, nil
	case rangeIndex:
		start := 1
		var err error
		if v.hasStart {
			if start, err = absolutePosition(v.start, extent); err != nil {
				return nil, err
			}
		}
		var iv Interval
		if !v.hasStop {
			iv = OpenInterval(start)
		} else {
			stop := v.stop
			if stop < 0 {
				// Exclusive stop: -1 excludes the last position.
				if stop, err = absolutePosition(stop, extent); err != nil {
					return nil, err
				}
			}
			iv = NewInterval(start, stop)
		}
		if iv.Bounded() && iv.Stop < iv.Start {
			return nil, fmt.Errorf("%w: span [%d, %d) is inverted", ErrInvalidSliceShape, iv.Start, iv.Stop)
		}
		return &iv, nil
	default:
		return nil, fmt.Errorf("%w: unsupported axis spec %T", ErrInvalidSliceShape, spec)
	}
}

// absolutePosition maps a possibly-negative 1-indexed position onto the
// axis. -1 is the last position; resolving any negative position requires a
// known extent.
func absolutePosition(i, extent int) (int, error) {
	if i > 0 {
		return i, nil
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: index 0 on a 1-indexed axis", ErrInvalidSliceShape)
	}
	if extent < 1 {
		return 0, fmt.Errorf("%w: negative index %d", ErrShapeRequired, i)
	}
	pos := extent + i + 1
	if pos < 1 {
		return 0, fmt.Errorf("%w: index %d reaches before the start of the axis", ErrInvalidSliceShape, i)
	}
	return pos, nil
}
