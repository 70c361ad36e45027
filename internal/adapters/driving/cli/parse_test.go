package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkbabb/sheetrange/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestParseCmd_CanonicalForm(t *testing.T) {
	out, err := execute(t, "parse", "'Sheet 1'!A1:B2")
	require.NoError(t, err)
	assert.Contains(t, out, "'Sheet 1'!A1:B2")
}

func TestParseCmd_ResolvesAgainstShape(t *testing.T) {
	out, err := execute(t, "parse", "Sheet1!A5:A", "--rows", "100", "--cols", "26")
	require.NoError(t, err)
	assert.Contains(t, out, "Sheet1!A5:A99")
}

func TestParseCmd_JSON(t *testing.T) {
	out, err := execute(t, "parse", "Sheet1!A1:B2", "--json")
	require.NoError(t, err)

	var parsed parsedRange
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "Sheet1!A1:B2", parsed.Canonical)
	assert.Equal(t, "Sheet1", parsed.Sheet)
	require.NotNil(t, parsed.Rows)
	assert.Equal(t, 1, parsed.Rows.Start)
	assert.Equal(t, 3, parsed.Rows.Stop)
}

func TestParseCmd_InvalidRange(t *testing.T) {
	_, err := execute(t, "parse", "Sheet1!A1:B2:C3")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}
