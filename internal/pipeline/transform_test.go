package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetsync/internal/models"
	"sheetsync/internal/sheets"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		" Customer Name ":  "customer_name",
		"AGENT":            "agent",
		"Sales Amount":     "sales_amount",
		"Tags & Interests": "tags_and_interests",
		"email":            "email",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeHeader(input), "input %q", input)
	}
}

func TestTransformAppliesRenames(t *testing.T) {
	table := &sheets.Table{
		Header: sheetHeader,
		Rows: [][]string{sheetRow(map[string]string{
			"name":  "Dana",
			"agent": "Eve",
		})},
	}

	records, err := Transform(table)
	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Dana", records[0].Name)
		assert.Equal(t, "Eve", records[0].Agent)
	}
}

func TestTransformMirrorsDuplicates(t *testing.T) {
	row := sheetRow(map[string]string{"agent": "Alice", "email": "alice@example.com"})
	table := &sheets.Table{Header: sheetHeader, Rows: [][]string{row, row, row}}

	records, err := Transform(table)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestTransformShortRow(t *testing.T) {
	table := &sheets.Table{
		Header: sheetHeader,
		Rows:   [][]string{{"Frank", "frank@example.com"}},
	}

	records, err := Transform(table)
	assert.NoError(t, err)
	if assert.Len(t, records, 1) {
		assert.Equal(t, "Frank", records[0].Name)
		assert.Equal(t, "frank@example.com", records[0].Email)
		assert.Equal(t, "", records[0].Agent)
		assert.Nil(t, records[0].FirstCallDate)
	}
}

func TestTransformRejectsDuplicateColumns(t *testing.T) {
	header := make([]string, len(sheetHeader))
	copy(header, sheetHeader)
	header[columnPos["remarks"]] = "Email" // second email column

	_, err := Transform(&sheets.Table{Header: header})

	var mismatch *models.SchemaMismatchError
	if assert.ErrorAs(t, err, &mismatch) {
		assert.Contains(t, mismatch.Missing, "remarks")
		assert.Contains(t, mismatch.Extra, "email")
	}
}

func TestTransformEmptyHeader(t *testing.T) {
	_, err := Transform(&sheets.Table{})

	var mismatch *models.SchemaMismatchError
	if assert.ErrorAs(t, err, &mismatch) {
		assert.Len(t, mismatch.Missing, len(expectedColumns))
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"$1,234.50": 1234.5,
		"99":        99,
		"":          0,
		"pending":   0,
		" $42 ":     42,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseAmount(input), "input %q", input)
	}
}

func TestParseDate(t *testing.T) {
	for _, input := range []string{"2024-03-01", "2024/03/01", "03/01/2024", "3/1/2024"} {
		parsed := parseDate(input)
		if assert.NotNil(t, parsed, "input %q", input) {
			assert.Equal(t, "2024-03-01", parsed.Format("2006-01-02"), "input %q", input)
		}
	}

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not a date"))
}
