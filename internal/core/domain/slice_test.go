package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlice(t *testing.T) {
	shape := SheetShape{RowCount: 10, ColumnCount: 26}

	tests := []struct {
		name  string
		shape SheetShape
		parts []Index
		want  string
	}{
		{
			name:  "single row index",
			parts: []Index{At(3)},
			want:  "3:3",
		},
		{
			name:  "row and column",
			parts: []Index{At(2), At(3)},
			want:  "C2:C2",
		},
		{
			name:  "sheet then axes",
			parts: []Index{Sheet("Data"), At(2), At(3)},
			want:  "Data!C2:C2",
		},
		{
			name:  "span is exclusive-stop",
			parts: []Index{Span(1, 3), Span(1, 3)},
			want:  "A1:B2",
		},
		{
			name:  "open-ended from",
			parts: []Index{From(5), At(1)},
			want:  "A5:A",
		},
		{
			name:  "until spans from the start",
			parts: []Index{Until(4)},
			want:  "1:3",
		},
		{
			name:  "column label binds to the column axis",
			parts: []Index{Col("B")},
			want:  "B:B",
		},
		{
			name:  "entire axis marker keeps the axis open",
			parts: []Index{All, At(2)},
			want:  "B:B",
		},
		{
			name:  "all axes marker yields the whole sheet",
			parts: []Index{Sheet("Data"), All, All},
			want:  "Data",
		},
		{
			name:  "bare sheet name",
			parts: []Index{Sheet("Data")},
			want:  "Data",
		},
		{
			name:  "negative row resolves from the end",
			shape: shape,
			parts: []Index{At(-1)},
			want:  "10:10",
		},
		{
			name:  "negative span endpoints",
			shape: shape,
			parts: []Index{Span(-3, -1), All},
			want:  "8:9",
		},
		{
			name:  "string classified as column label",
			parts: []Index{Str("AZ")},
			want:  "AZ:AZ",
		},
		{
			name:  "string classified as sheet name",
			parts: []Index{Str("Class Data")},
			want:  "'Class Data'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSlice(tt.shape, tt.parts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestResolveSlice_NegativeIndices(t *testing.T) {
	shape := SheetShape{RowCount: 10, ColumnCount: 26}

	got, err := ResolveSlice(shape, At(-1))
	require.NoError(t, err)
	assert.Equal(t, iv(10, 11), got.Rows)

	got, err = ResolveSlice(shape, At(-2))
	require.NoError(t, err)
	assert.Equal(t, iv(9, 10), got.Rows)

	// Without a shape, negative indices cannot resolve
	_, err = ResolveSlice(SheetShape{}, At(-1))
	assert.ErrorIs(t, err, ErrShapeRequired)

	_, err = ResolveSlice(SheetShape{}, Span(1, -1))
	assert.ErrorIs(t, err, ErrShapeRequired)
}

func TestResolveSlice_Errors(t *testing.T) {
	tests := []struct {
		name  string
		parts []Index
		want  error
	}{
		{
			name:  "too many axis specs",
			parts: []Index{At(1), At(2), At(3)},
			want:  ErrInvalidSliceShape,
		},
		{
			name:  "sheet name after axis specs",
			parts: []Index{At(1), Sheet("Data")},
			want:  ErrAmbiguousSheetReference,
		},
		{
			name:  "column label in row position",
			parts: []Index{Col("A"), At(5)},
			want:  ErrInvalidSliceShape,
		},
		{
			name:  "zero index",
			parts: []Index{At(0)},
			want:  ErrInvalidSliceShape,
		},
		{
			name:  "inverted span",
			parts: []Index{Span(5, 2)},
			want:  ErrInvalidSliceShape,
		},
		{
			name:  "bad column letters",
			parts: []Index{Col("A1")},
			want:  ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSlice(SheetShape{RowCount: 10, ColumnCount: 10}, tt.parts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolveSlice_WholeSheetEquality(t *testing.T) {
	// Entire-axis markers on both axes match the whole-sheet reference by
	// canonical string.
	got, err := ResolveSlice(SheetShape{}, Sheet("Data"), All, All)
	require.NoError(t, err)
	assert.True(t, got.Equal(WholeSheet("Data")))
}
