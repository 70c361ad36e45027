package driven

import (
	"context"

	"github.com/mkbabb/sheetrange/internal/core/domain"
)

// ShapeProvider reports the row/column extent of a sheet. Staleness is the
// caller's concern; wrap a provider in services.ShapeCache for a bounded TTL.
type ShapeProvider interface {
	// GetShape returns the extent of the named sheet. An empty sheet name
	// refers to the spreadsheet's first sheet.
	GetShape(ctx context.Context, spreadsheetID, sheet string) (domain.SheetShape, error)
}

// BatchWriter issues one multi-range value write against a spreadsheet.
// Implementations must either apply the whole batch or return an error with
// nothing recorded as flushed, so the coordinator can re-flush the same
// pending set safely.
type BatchWriter interface {
	WriteBatch(ctx context.Context, spreadsheetID string, writes []domain.PendingWrite) error
}

// ValueReader reads the values covered by one range address.
type ValueReader interface {
	ReadRange(ctx context.Context, spreadsheetID string, addr domain.RangeAddress) ([][]any, error)
}
