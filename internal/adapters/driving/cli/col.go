package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkbabb/sheetrange/internal/core/domain"
)

var colCmd = &cobra.Command{
	Use:   "col [value]",
	Short: "Convert between column letters and numbers",
	Long: `Converts a 1-indexed column number to its A1 letters, or column
letters back to the number: "col 28" prints AB, "col AB" prints 28.`,
	Args: cobra.ExactArgs(1),
	RunE: runCol,
}

func init() {
	rootCmd.AddCommand(colCmd)
}

func runCol(cmd *cobra.Command, args []string) error {
	if n, err := strconv.Atoi(args[0]); err == nil {
		letters := domain.ColumnToLetters(n)
		if letters == "" {
			return fmt.Errorf("%w: column %d is below 1", domain.ErrInvalidAddress, n)
		}
		cmd.Println(letters)
		return nil
	}

	n, err := domain.LettersToColumn(args[0])
	if err != nil {
		return err
	}
	cmd.Println(n)
	return nil
}
