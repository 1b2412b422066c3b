package sheets

import "context"

// Table is the raw contents of one worksheet tab: a header row naming the
// columns and the data rows beneath it, in display order. Cell values are
// strings exactly as the sheet renders them; typing happens downstream.
type Table struct {
	Header []string
	Rows   [][]string
}

// Source fetches the full contents of the configured sheet tab. Every sync
// fetches fresh; nothing is cached across runs.
type Source interface {
	Fetch(ctx context.Context) (*Table, error)
}
