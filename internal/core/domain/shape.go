package domain

// SheetShape is the row/column extent of a sheet, as reported by the
// spreadsheet metadata. The zero value means the shape is unknown; either
// axis may be unknown independently.
type SheetShape struct {
	RowCount    int
	ColumnCount int
}

// Known reports whether both extents are available.
func (s SheetShape) Known() bool {
	return s.RowCount > 0 && s.ColumnCount > 0
}
