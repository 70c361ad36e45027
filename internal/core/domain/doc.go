// Package domain holds the pure addressing model for Google Sheets ranges:
// the A1 coordinate codec, half-open intervals, the RangeAddress value, the
// A1 range-string parser, and the slice-expression resolver.
//
// Everything in this package is stateless and safe for concurrent use. All
// positions are 1-indexed, matching spreadsheet conventions; internal
// intervals are half-open [start, stop) while A1 text remains inclusive on
// the wire.
package domain
