package domain

import (
	"fmt"
	"strings"
)

// ParseRange parses an A1 range expression, optionally prefixed by a quoted
// or unquoted sheet name, into a RangeAddress. The shape supplies stop
// defaults for open-ended axes; pass the zero SheetShape when it is unknown
// and those axes stay open-ended.
//
// Accepted bodies: "", "A1", "A1:B2", "A:A", "1:2", "A5:A". A string with no
// '!' separator, no digits and no ':' is taken to be a bare sheet name and
// yields a whole-sheet address.
func ParseRange(s string, shape SheetShape) (RangeAddress, error) {
	s = strings.TrimSpace(s)

	rawSheet, body, hasSheet, err := splitOnUnquotedBang(s)
	if err != nil {
		return RangeAddress{}, err
	}

	addr := RangeAddress{}
	if hasSheet {
		addr.Sheet = unquoteSheet(rawSheet)
		if addr.Sheet == "" {
			return RangeAddress{}, fmt.Errorf("%w: empty sheet name in %q", ErrInvalidAddress, s)
		}
	} else if body != "" && !strings.ContainsAny(body, "0123456789:") {
		// Nothing marks this as a range token, so the whole string is a
		// sheet name.
		addr.Sheet = unquoteSheet(body)
		return addr, nil
	}
	if body == "" {
		return addr, nil
	}

	tokens := strings.Split(body, ":")
	switch len(tokens) {
	case 1:
		// A single token anchors an open-ended range at that cell; the stop
		// defaults from the shape when known.
		row, col, err := ParseCell(tokens[0])
		if err != nil {
			return RangeAddress{}, err
		}
		if row > 0 {
			rows := OpenInterval(row).Resolve(shape.RowCount)
			addr.Rows = &rows
		}
		if col > 0 {
			cols := OpenInterval(col).Resolve(shape.ColumnCount)
			addr.Cols = &cols
		}
	case 2:
		startRow, startCol, err := ParseCell(tokens[0])
		if err != nil {
			return RangeAddress{}, err
		}
		stopRow, stopCol, err := ParseCell(tokens[1])
		if err != nil {
			return RangeAddress{}, err
		}
		if addr.Rows, err = spanAxis(startRow, stopRow, shape.RowCount); err != nil {
			return RangeAddress{}, err
		}
		if addr.Cols, err = spanAxis(startCol, stopCol, shape.ColumnCount); err != nil {
			return RangeAddress{}, err
		}
	default:
		return RangeAddress{}, fmt.Errorf("%w: range %q has more than one ':'", ErrInvalidAddress, s)
	}
	return addr, nil
}

// spanAxis builds one axis interval from the start and stop components of a
// two-token range body. A missing start defaults to 1; a missing stop
// defaults to the axis extent, or stays open when the shape is unknown. The
// stop component of an A1 token is inclusive and is converted to the
// half-open internal form here.
func spanAxis(start, stop, extent int) (*Interval, error) {
	if start == 0 {
		start = 1
	}
	var iv Interval
	if stop == 0 {
		iv = OpenInterval(start).Resolve(extent)
	} else {
		iv = NewInterval(start, stop+1)
	}
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	return &iv, nil
}

// splitOnUnquotedBang splits a range expression on the first '!' that is not
// inside a quoted sheet name.
func splitOnUnquotedBang(s string) (sheet, body string, found bool, err error) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			// A doubled quote inside a quoted name toggles twice, so the
			// net state is unchanged.
			inQuote = !inQuote
		case '!':
			if !inQuote {
				return s[:i], s[i+1:], true, nil
			}
		}
	}
	if inQuote {
		return "", "", false, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidAddress, s)
	}
	return "", s, false, nil
}

// unquoteSheet strips surrounding single quotes and un-doubles embedded
// quotes. Unquoted names pass through unchanged; the internal form is always
// unquoted.
func unquoteSheet(name string) string {
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		return strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}
