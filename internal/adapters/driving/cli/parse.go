package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/core/domain"
)

var (
	parseRows int
	parseCols int
	parseJSON bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [range]",
	Short: "Parse an A1 range expression",
	Long: `Parses an A1 range expression ("Sheet1!A1:B2", "A:A", "'My Sheet'")
into its sheet name and row/column intervals, and prints the canonical form.
Supply --rows/--cols to resolve open-ended axes against a known sheet shape.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().IntVar(&parseRows, "rows", 0, "sheet row count, for resolving open-ended axes")
	parseCmd.Flags().IntVar(&parseCols, "cols", 0, "sheet column count, for resolving open-ended axes")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the parsed address as JSON")
	rootCmd.AddCommand(parseCmd)
}

// parsedRange is the JSON shape of a parsed address.
type parsedRange struct {
	Canonical string      `json:"canonical"`
	Sheet     string      `json:"sheet,omitempty"`
	Rows      *axisBounds `json:"rows,omitempty"`
	Cols      *axisBounds `json:"cols,omitempty"`
}

type axisBounds struct {
	Start int  `json:"start"`
	Stop  int  `json:"stop,omitempty"`
	Open  bool `json:"open,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	shape := domain.SheetShape{RowCount: parseRows, ColumnCount: parseCols}
	addr, err := domain.ParseRange(args[0], shape)
	if err != nil {
		return fmt.Errorf("parse %q: %w", args[0], err)
	}

	if parseJSON {
		out := parsedRange{
			Canonical: addr.String(),
			Sheet:     addr.Sheet,
			Rows:      bounds(addr.Rows),
			Cols:      bounds(addr.Cols),
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(addr.String())
	return nil
}

func bounds(iv *domain.Interval) *axisBounds {
	if iv == nil {
		return nil
	}
	if !iv.Bounded() {
		return &axisBounds{Start: iv.Start, Open: true}
	}
	return &axisBounds{Start: iv.Start, Stop: iv.Stop}
}
