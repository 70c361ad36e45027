// Package sheets implements the shape, read and batch-write ports over the
// Google Sheets v4 API.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/mkbabb/sheetrange/internal/connectors/google"
	"github.com/mkbabb/sheetrange/internal/core/domain"
	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
	"github.com/mkbabb/sheetrange/internal/logger"
)

// Ensure Client implements the driven ports.
var (
	_ driven.ShapeProvider = (*Client)(nil)
	_ driven.BatchWriter   = (*Client)(nil)
	_ driven.ValueReader   = (*Client)(nil)
)

// Client wraps the Sheets API behind the core's driven ports. Every call is
// gated by the shared throttler and the per-bucket rate limiter.
type Client struct {
	svc          *sheets.Service
	throttler    *google.Throttler
	readLimiter  *google.RateLimiter
	writeLimiter *google.RateLimiter
	inputOption  string
}

// NewClient creates a Sheets client from an authenticated service.
func NewClient(svc *sheets.Service, cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		svc:          svc,
		throttler:    google.NewThrottler(cfg.ThrottleInterval),
		readLimiter:  google.NewRateLimiter(google.ServiceSheetsRead),
		writeLimiter: google.NewRateLimiter(google.ServiceSheetsWrite),
		inputOption:  cfg.ValueInputOption,
	}
}

// GetShape returns the grid extent of the named sheet. An empty sheet name
// refers to the spreadsheet's first sheet.
func (c *Client) GetShape(ctx context.Context, spreadsheetID, sheet string) (domain.SheetShape, error) {
	if err := c.waitRead(ctx); err != nil {
		return domain.SheetShape{}, err
	}

	resp, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets(properties(title,gridProperties(rowCount,columnCount)))").
		Context(ctx).Do()
	if err != nil {
		return domain.SheetShape{}, c.recordErr(google.WrapError(err), c.readLimiter)
	}

	for i, sh := range resp.Sheets {
		props := sh.Properties
		if props == nil || props.GridProperties == nil {
			continue
		}
		if (sheet == "" && i == 0) || props.Title == sheet {
			return domain.SheetShape{
				RowCount:    int(props.GridProperties.RowCount),
				ColumnCount: int(props.GridProperties.ColumnCount),
			}, nil
		}
	}
	return domain.SheetShape{}, fmt.Errorf("%w: sheet %q in spreadsheet %s", google.ErrNotFound, sheet, spreadsheetID)
}

// WriteBatch applies all pending writes in one values.batchUpdate call.
func (c *Client) WriteBatch(ctx context.Context, spreadsheetID string, writes []domain.PendingWrite) error {
	if len(writes) == 0 {
		return nil
	}
	if err := c.waitWrite(ctx); err != nil {
		return err
	}

	data := make([]*sheets.ValueRange, 0, len(writes))
	for _, w := range writes {
		rng := w.Address.String()
		if rng == "" {
			return fmt.Errorf("%w: write against the empty range", domain.ErrInvalidAddress)
		}
		data = append(data, &sheets.ValueRange{
			Range:  rng,
			Values: w.Values,
		})
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: c.inputOption,
		Data:             data,
	}
	resp, err := c.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return c.recordErr(google.WrapError(err), c.writeLimiter)
	}
	logger.Debug("batchUpdate wrote %d cells across %d range(s)", resp.TotalUpdatedCells, len(data))
	return nil
}

// ReadRange returns the values covered by the address.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID string, addr domain.RangeAddress) ([][]any, error) {
	rng := addr.String()
	if rng == "" {
		return nil, fmt.Errorf("%w: read against the empty range", domain.ErrInvalidAddress)
	}
	if err := c.waitRead(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, c.recordErr(google.WrapError(err), c.readLimiter)
	}
	return resp.Values, nil
}

func (c *Client) waitRead(ctx context.Context) error {
	if err := c.throttler.Wait(ctx); err != nil {
		return err
	}
	return c.readLimiter.Wait(ctx)
}

func (c *Client) waitWrite(ctx context.Context) error {
	if err := c.throttler.Wait(ctx); err != nil {
		return err
	}
	return c.writeLimiter.Wait(ctx)
}

// recordErr feeds 429 responses back into the limiter's backoff window.
func (c *Client) recordErr(err error, limiter *google.RateLimiter) error {
	if google.IsRateLimited(err) {
		limiter.RecordRateLimitError(0)
	}
	return err
}
