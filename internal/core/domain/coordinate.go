package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnToLetters converts a 1-indexed column number to its A1 letter form.
// The encoding is bijective base-26 over A-Z with no zero digit:
// 1 -> "A", 26 -> "Z", 27 -> "AA", 28 -> "AB". Columns below 1 render as "".
func ColumnToLetters(col int) string {
	if col < 1 {
		return ""
	}
	var letters []byte
	for col > 0 {
		col--
		letters = append(letters, byte('A'+col%26))
		col /= 26
	}
	// Digits were produced right-to-left
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// LettersToColumn converts an A1 column letter run back to its 1-indexed
// column number. Input is case-insensitive; the canonical form is upper-case.
func LettersToColumn(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty column letters", ErrInvalidAddress)
	}
	col := 0
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: column letters %q", ErrInvalidAddress, s)
		}
		col = col*26 + int(r-'A') + 1
	}
	return col, nil
}

// FormatCell renders a cell token from 1-indexed row and column. A zero row
// or column means that axis is unspecified and its part is omitted; if both
// are zero the result is the empty string.
func FormatCell(row, col int) string {
	var b strings.Builder
	if col >= 1 {
		b.WriteString(ColumnToLetters(col))
	}
	if row >= 1 {
		b.WriteString(strconv.Itoa(row))
	}
	return b.String()
}

// ParseCell splits a cell token into a leading letter run and a trailing
// digit run. Either part may be absent ("A" is a pure column reference, "5"
// a pure row reference) but not both; a zero return on an axis means the
// token did not specify it.
func ParseCell(s string) (row, col int, err error) {
	i := 0
	for i < len(s) && isCellLetter(s[i]) {
		i++
	}
	letters, digits := s[:i], s[i:]
	if letters == "" && digits == "" {
		return 0, 0, fmt.Errorf("%w: empty cell token", ErrInvalidAddress)
	}
	if letters != "" {
		col, err = LettersToColumn(letters)
		if err != nil {
			return 0, 0, err
		}
	}
	if digits != "" {
		row, err = strconv.Atoi(digits)
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("%w: cell token %q", ErrInvalidAddress, s)
		}
	}
	return row, col, nil
}

func isCellLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
