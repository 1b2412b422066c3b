package pipeline

import (
	"strconv"
	"strings"
	"time"

	"sheetsync/internal/models"
	"sheetsync/internal/sheets"
)

// expectedColumns is the destination column set in normalized form. The sheet
// header must cover it exactly; extra or missing columns abort the sync.
var expectedColumns = []string{
	"name", "email", "number", "country_name", "remarks", "agent",
	"first_call_date", "status", "notes_from_call", "post_call_email",
	"tags", "interested_category", "sales_status", "sales_amount",
	"next_follow_up_time", "next_follow_up_date", "calling_stamp",
	"signup_date",
}

// headerRenames maps legacy sheet column names onto destination names.
var headerRenames = map[string]string{
	"customer_name": "name",
	"agent_name":    "agent",
}

// dateLayouts are tried in order when parsing date cells. Unparseable dates
// become NULL rather than failing the row.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

var amountCleaner = strings.NewReplacer("$", "", ",", "")

// Transform projects raw sheet rows onto typed SalesRecords. Duplicate rows
// in the sheet are mirrored as-is; no row-level deduplication happens here.
func Transform(table *sheets.Table) ([]models.SalesRecord, error) {
	index, err := mapHeader(table.Header)
	if err != nil {
		return nil, err
	}

	records := make([]models.SalesRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, projectRow(row, index))
	}
	return records, nil
}

// mapHeader normalizes the sheet's column names and requires them to match
// the destination column set exactly, returning each column's cell position.
func mapHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	var extra []string
	for i, raw := range header {
		name := NormalizeHeader(raw)
		if renamed, ok := headerRenames[name]; ok {
			name = renamed
		}
		if !expectedColumnSet[name] {
			extra = append(extra, name)
			continue
		}
		if _, dup := index[name]; dup {
			extra = append(extra, name)
			continue
		}
		index[name] = i
	}

	var missing []string
	for _, col := range expectedColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return nil, &models.SchemaMismatchError{Missing: missing, Extra: extra}
	}
	return index, nil
}

var expectedColumnSet = func() map[string]bool {
	set := make(map[string]bool, len(expectedColumns))
	for _, col := range expectedColumns {
		set[col] = true
	}
	return set
}()

// NormalizeHeader lowercases a sheet column name and folds it onto the
// destination naming convention: spaces become underscores, "&" becomes
// "and".
func NormalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "&", "and")
}

func projectRow(row []string, index map[string]int) models.SalesRecord {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return models.SalesRecord{
		Name:               cell("name"),
		Email:              cell("email"),
		Number:             cell("number"),
		CountryName:        cell("country_name"),
		Remarks:            cell("remarks"),
		Agent:              cell("agent"),
		FirstCallDate:      parseDate(cell("first_call_date")),
		Status:             cell("status"),
		NotesFromCall:      cell("notes_from_call"),
		PostCallEmail:      cell("post_call_email"),
		Tags:               cell("tags"),
		InterestedCategory: cell("interested_category"),
		SalesStatus:        cell("sales_status"),
		SalesAmount:        parseAmount(cell("sales_amount")),
		NextFollowUpTime:   cell("next_follow_up_time"),
		NextFollowUpDate:   parseDate(cell("next_follow_up_date")),
		CallingStamp:       parseDate(cell("calling_stamp")),
		SignupDate:         parseDate(cell("signup_date")),
	}
}

// parseAmount strips currency formatting before parsing. Blank or
// unparseable amounts become 0.
func parseAmount(value string) float64 {
	value = strings.TrimSpace(amountCleaner.Replace(value))
	if value == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}

// parseDate returns nil for blank or unparseable cells.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
