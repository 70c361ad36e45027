package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkbabb/sheetrange/internal/core/domain"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
	"github.com/mkbabb/sheetrange/internal/logger"
)

// BatchCoordinator accumulates pending range writes against one spreadsheet
// and flushes them as a single multi-range call. Writes are keyed by the
// range's canonical string with last-write-wins replacement.
//
// All methods are safe for concurrent use; the pending map is guarded by a
// single mutex, so enqueue/flush pairs against the same coordinator are
// serialised. On a transport error the pending map is left intact and the
// same batch can be re-flushed by the caller.
type BatchCoordinator struct {
	mu            sync.Mutex
	spreadsheetID string
	writer        driven.BatchWriter
	interval      time.Duration

	pending   map[string]domain.PendingWrite
	order     []string
	lastFlush time.Time

	// now is swappable for deterministic tests.
	now func() time.Time
}

// FlushResult describes one completed flush.
type FlushResult struct {
	// BatchID identifies the flush in logs.
	BatchID string
	// Count is the number of distinct ranges written.
	Count int
	// Ranges holds the canonical range strings, in enqueue order.
	Ranges []string
}

// NewBatchCoordinator creates a coordinator for one spreadsheet. The
// interval is the minimum wall-clock spacing between threshold-triggered
// flushes; zero disables the time gate.
func NewBatchCoordinator(spreadsheetID string, writer driven.BatchWriter, interval time.Duration) *BatchCoordinator {
	return &BatchCoordinator{
		spreadsheetID: spreadsheetID,
		writer:        writer,
		interval:      interval,
		pending:       make(map[string]domain.PendingWrite),
		now:           time.Now,
	}
}

// Enqueue merges a write into the pending map. A second write to the same
// range address replaces the first; no flush happens here.
func (c *BatchCoordinator) Enqueue(addr domain.RangeAddress, values [][]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := addr.Key()
	if _, ok := c.pending[key]; !ok {
		c.order = append(c.order, key)
	}
	c.pending[key] = domain.PendingWrite{Address: addr, Values: values}
}

// Pending returns the number of distinct pending range addresses.
func (c *BatchCoordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// MaybeFlush flushes the pending writes when both the time gate and the size
// threshold are met: the elapsed time since the last flush must be at least
// the coordinator's interval, and at least batchSize distinct ranges must be
// pending. A batchSize of zero or less makes the flush immediate and
// unconditional. When the conditions are not met it returns (nil, nil) and
// no call is issued; that is not an error.
func (c *BatchCoordinator) MaybeFlush(ctx context.Context, batchSize int) (*FlushResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if batchSize > 0 {
		if c.now().Sub(c.lastFlush) < c.interval {
			return nil, nil
		}
		if len(c.pending) < batchSize {
			return nil, nil
		}
	}
	return c.flushLocked(ctx)
}

// FlushRemaining unconditionally flushes whatever is pending, for use at
// shutdown or at the end of a write loop. Flushing an empty coordinator is a
// no-op returning (nil, nil).
func (c *BatchCoordinator) FlushRemaining(ctx context.Context) (*FlushResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushLocked(ctx)
}

// flushLocked issues the batch call. The caller must hold c.mu. The pending
// map is only cleared after the transport call succeeds.
func (c *BatchCoordinator) flushLocked(ctx context.Context) (*FlushResult, error) {
	if len(c.pending) == 0 {
		return nil, nil
	}

	writes := make([]domain.PendingWrite, 0, len(c.order))
	ranges := make([]string, 0, len(c.order))
	for _, key := range c.order {
		writes = append(writes, c.pending[key])
		ranges = append(ranges, key)
	}

	if err := c.writer.WriteBatch(ctx, c.spreadsheetID, writes); err != nil {
		// Pending writes stay queued so the caller can retry the same batch.
		return nil, err
	}

	result := &FlushResult{
		BatchID: uuid.NewString(),
		Count:   len(writes),
		Ranges:  ranges,
	}
	c.pending = make(map[string]domain.PendingWrite)
	c.order = nil
	c.lastFlush = c.now()

	logger.Debug("flushed batch %s: %d range(s) to spreadsheet %s", result.BatchID, result.Count, c.spreadsheetID)
	return result, nil
}
