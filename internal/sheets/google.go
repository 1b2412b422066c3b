package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"sheetsync/internal/models"
)

// GoogleSource reads a worksheet through the Google Sheets API using
// service-account credentials.
type GoogleSource struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	tab           string
}

// NewGoogleSource builds a read-only Sheets client from a service-account
// credentials file.
func NewGoogleSource(ctx context.Context, credentialsFile, spreadsheetID, tab string) (*GoogleSource, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}
	return &GoogleSource{svc: svc, spreadsheetID: spreadsheetID, tab: tab}, nil
}

// Fetch returns the tab's full contents. The first row is the header.
func (s *GoogleSource) Fetch(ctx context.Context) (*Table, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.tab).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return nil, &models.FetchError{
				Err: fmt.Errorf("spreadsheet %q or tab %q not found: %w", s.spreadsheetID, s.tab, err),
			}
		}
		return nil, &models.FetchError{Err: err}
	}

	table := &Table{}
	if len(resp.Values) == 0 {
		return table, nil
	}
	table.Header = toStrings(resp.Values[0])
	for _, row := range resp.Values[1:] {
		table.Rows = append(table.Rows, toStrings(row))
	}
	return table, nil
}

// toStrings flattens one API row. The Sheets API returns formatted cells as
// interface values; anything non-nil is rendered with its default format.
func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			continue
		}
		out[i] = fmt.Sprint(cell)
	}
	return out
}
