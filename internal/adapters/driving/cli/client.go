package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mkbabb/sheetrange/internal/adapters/driven/auth/token"
	"github.com/mkbabb/sheetrange/internal/adapters/driven/config/file"
	"github.com/mkbabb/sheetrange/internal/connectors/google"
	gsheets "github.com/mkbabb/sheetrange/internal/connectors/google/sheets"
	"google.golang.org/api/sheets/v4"
)

var (
	flagSpreadsheet string
	flagCredentials string
	flagToken       string
)

// newSheetsClient builds an authenticated Sheets client from flags and the
// config file. Flags win over configured values.
func newSheetsClient(ctx context.Context) (*gsheets.Client, string, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, "", err
	}

	spreadsheetID := flagSpreadsheet
	if spreadsheetID == "" {
		spreadsheetID = store.SpreadsheetID()
	}
	if spreadsheetID == "" {
		return nil, "", errors.New("no spreadsheet ID: pass --spreadsheet or set it in " + store.Path())
	}

	svc, err := newSheetsService(ctx, store)
	if err != nil {
		return nil, "", err
	}

	client := gsheets.NewClient(svc, gsheets.Config{
		ThrottleInterval: store.ThrottleInterval(),
	})
	return client, spreadsheetID, nil
}

// newSheetsService authenticates from, in order: the --token flag, a
// configured access token, then credentials JSON.
func newSheetsService(ctx context.Context, store *file.ConfigStore) (*sheets.Service, error) {
	accessToken := flagToken
	if accessToken == "" {
		accessToken = store.AccessToken()
	}
	if accessToken != "" {
		ts := google.NewTokenSource(ctx, token.NewStatic(accessToken))
		return google.NewSheetsService(ctx, ts)
	}

	credsPath := flagCredentials
	if credsPath == "" {
		credsPath = store.CredentialsPath()
	}
	if credsPath == "" {
		return nil, errors.New("no credentials: pass --credentials, --token, or set one in " + store.Path())
	}

	credsJSON, err := os.ReadFile(credsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return google.NewSheetsServiceFromJSON(ctx, credsJSON)
}
