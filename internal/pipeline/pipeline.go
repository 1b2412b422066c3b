package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sheetsync/internal/models"
	"sheetsync/internal/sheets"
)

const insertBatchSize = 500

// Result summarizes one completed sync run.
type Result struct {
	Rows       int
	Trigger    string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Pipeline performs a full-refresh sync: it fetches every row of the source
// tab and replaces the destination table's contents in a single transaction.
// The destination is only ever observable as the full prior mirror or the
// full new mirror.
//
// Run is not safe for concurrent use against the same destination table;
// callers serialize runs (see the worker package).
type Pipeline struct {
	source  sheets.Source
	db      *gorm.DB
	timeout time.Duration
}

// New wires a pipeline to its source sheet and destination database. A
// non-zero timeout bounds each run's fetch and write I/O.
func New(source sheets.Source, db *gorm.DB, timeout time.Duration) *Pipeline {
	return &Pipeline{source: source, db: db, timeout: timeout}
}

// Run executes one sync. On any failure the destination table is left
// unchanged: fetch and schema errors abort before the transaction, and write
// errors roll it back.
func (p *Pipeline) Run(ctx context.Context, trigger string) (*Result, error) {
	result := &Result{Trigger: trigger, StartedAt: time.Now()}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	table, err := p.source.Fetch(ctx)
	if err != nil {
		var fetchErr *models.FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}
		return nil, &models.FetchError{Err: err}
	}

	records, err := Transform(table)
	if err != nil {
		return nil, err
	}

	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", models.SalesRecord{}.TableName())).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, insertBatchSize).Error
	})
	if err != nil {
		return nil, &models.WriteError{Err: err}
	}

	result.Rows = len(records)
	result.FinishedAt = time.Now()
	return result, nil
}
