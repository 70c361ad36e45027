package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/core/domain"
	"github.com/mkbabb/sheetrange/internal/core/services"
)

var putCmd = &cobra.Command{
	Use:   "put [range]",
	Short: "Write CSV rows from stdin to a range",
	Long: `Reads CSV rows from stdin and writes them to the given range through
the batch coordinator, flushing on exit.`,
	Args: cobra.ExactArgs(1),
	RunE: runPut,
}

func init() {
	putCmd.Flags().StringVar(&flagSpreadsheet, "spreadsheet", "", "spreadsheet ID (defaults to the configured one)")
	putCmd.Flags().StringVar(&flagCredentials, "credentials", "", "path to Google credentials JSON")
	putCmd.Flags().StringVar(&flagToken, "token", "", "pre-issued OAuth access token")
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	addr, err := domain.ParseRange(args[0], domain.SheetShape{})
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}

	values, err := readCSV(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(values) == 0 {
		return nil
	}

	ctx := context.Background()
	client, spreadsheetID, err := newSheetsClient(ctx)
	if err != nil {
		return err
	}

	coordinator := services.NewBatchCoordinator(spreadsheetID, client, 0)
	coordinator.Enqueue(addr, values)

	result, err := coordinator.FlushRemaining(ctx)
	if err != nil {
		return fmt.Errorf("write %s: %w", addr, err)
	}
	cmd.Printf("wrote %d range(s)\n", result.Count)
	return nil
}

func readCSV(r io.Reader) ([][]any, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var values [][]any
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]any, len(record))
		for i, field := range record {
			row[i] = field
		}
		values = append(values, row)
	}
	return values, nil
}
