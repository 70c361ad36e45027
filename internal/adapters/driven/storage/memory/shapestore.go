// Package memory provides in-memory adapter implementations, used by tests
// and by CLI commands that run without network access.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkbabb/sheetrange/internal/core/domain"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

// Ensure ShapeStore implements the interface.
var _ driven.ShapeProvider = (*ShapeStore)(nil)

// ShapeStore is an in-memory implementation of driven.ShapeProvider.
type ShapeStore struct {
	mu     sync.RWMutex
	shapes map[string]domain.SheetShape
}

// NewShapeStore creates a new in-memory shape store.
func NewShapeStore() *ShapeStore {
	return &ShapeStore{
		shapes: make(map[string]domain.SheetShape),
	}
}

// SetShape records the extent of a sheet.
func (s *ShapeStore) SetShape(spreadsheetID, sheet string, shape domain.SheetShape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shapes[key(spreadsheetID, sheet)] = shape
}

// GetShape returns a previously recorded extent. A missing entry fails with
// domain.ErrShapeRequired since callers cannot resolve open or negative
// indices without it.
func (s *ShapeStore) GetShape(_ context.Context, spreadsheetID, sheet string) (domain.SheetShape, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shape, ok := s.shapes[key(spreadsheetID, sheet)]
	if !ok {
		return domain.SheetShape{}, fmt.Errorf("%w: no shape recorded for %s/%s", domain.ErrShapeRequired, spreadsheetID, sheet)
	}
	return shape, nil
}

func key(spreadsheetID, sheet string) string {
	return spreadsheetID + "\x00" + sheet
}
