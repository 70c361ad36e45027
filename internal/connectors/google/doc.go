// Package google provides shared infrastructure for the Google Sheets
// client.
//
// This package contains the pieces every Sheets call goes through:
//   - TokenSource adapter to bridge a TokenProvider to oauth2.TokenSource
//   - Service factories for creating the Sheets API client
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Throttling and rate limiting to respect Google API quotas
//
// # Usage
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewSheetsService(ctx, ts)
//
// # OAuth2 Scopes
//
// The Sheets client uses these scopes:
//   - https://www.googleapis.com/auth/spreadsheets (sensitive)
//   - https://www.googleapis.com/auth/spreadsheets.readonly (sensitive)
package google
