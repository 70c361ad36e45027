package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnToLetters(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{0, ""},
		{-5, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnToLetters(tt.col), "column %d", tt.col)
	}
}

func TestLettersToColumn(t *testing.T) {
	tests := []struct {
		letters string
		want    int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AB", 28},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"aa", 27}, // case-insensitive
	}

	for _, tt := range tests {
		got, err := LettersToColumn(tt.letters)
		require.NoError(t, err, "letters %q", tt.letters)
		assert.Equal(t, tt.want, got, "letters %q", tt.letters)
	}
}

func TestLettersToColumn_Invalid(t *testing.T) {
	for _, letters := range []string{"", "A1", "1", "A B", "-"} {
		_, err := LettersToColumn(letters)
		assert.ErrorIs(t, err, ErrInvalidAddress, "letters %q", letters)
	}
}

func TestColumnLettersRoundTrip(t *testing.T) {
	for col := 1; col <= 2000; col++ {
		got, err := LettersToColumn(ColumnToLetters(col))
		require.NoError(t, err)
		require.Equal(t, col, got)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     string
	}{
		{"both axes", 1, 1, "A1"},
		{"B2", 2, 2, "B2"},
		{"Z26", 26, 26, "Z26"},
		{"row only", 5, 0, "5"},
		{"column only", 0, 3, "C"},
		{"neither", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.row, tt.col))
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		token    string
		row, col int
	}{
		{"A1", 1, 1},
		{"B2", 2, 2},
		{"AB10", 10, 28},
		{"1", 1, 0},
		{"A", 0, 1},
		{"az5", 5, 52},
	}

	for _, tt := range tests {
		row, col, err := ParseCell(tt.token)
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.row, row, "row of %q", tt.token)
		assert.Equal(t, tt.col, col, "col of %q", tt.token)
	}
}

func TestParseCell_Invalid(t *testing.T) {
	for _, token := range []string{"", "1A", "A1B", "A0", "0", "A-1", "$A$1"} {
		_, _, err := ParseCell(token)
		assert.ErrorIs(t, err, ErrInvalidAddress, "token %q", token)
	}
}

func TestParseCellRoundTrip(t *testing.T) {
	for row := 1; row <= 40; row++ {
		for col := 1; col <= 60; col++ {
			gotRow, gotCol, err := ParseCell(FormatCell(row, col))
			require.NoError(t, err)
			require.Equal(t, row, gotRow)
			require.Equal(t, col, gotCol)
		}
	}
}
