package google

import (
	"context"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService creates a Sheets API service using the provided TokenSource.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}

// NewSheetsServiceFromJSON creates a Sheets API service from service-account
// or authorised-user credentials JSON.
func NewSheetsServiceFromJSON(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
	creds, err := googleauth.CredentialsFromJSON(ctx, credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
}
