package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get [range]",
	Short: "Read the values in a range",
	Long: `Reads the values covered by an A1 range expression and prints them
as tab-separated rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&flagSpreadsheet, "spreadsheet", "", "spreadsheet ID (defaults to the configured one)")
	getCmd.Flags().StringVar(&flagCredentials, "credentials", "", "path to Google credentials JSON")
	getCmd.Flags().StringVar(&flagToken, "token", "", "pre-issued OAuth access token")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	addr, err := domain.ParseRange(args[0], domain.SheetShape{})
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}

	ctx := context.Background()
	client, spreadsheetID, err := newSheetsClient(ctx)
	if err != nil {
		return err
	}

	values, err := client.ReadRange(ctx, spreadsheetID, addr)
	if err != nil {
		return fmt.Errorf("read %s: %w", addr, err)
	}

	for _, row := range values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		cmd.Println(strings.Join(cells, "\t"))
	}
	return nil
}
