package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"promptadmin/internal/dbx"
)

// totalRunsKey is the metadata key tracking runs across all examples.
const totalRunsKey = "total_example_runs"

// UsageRepository tracks how many times each built-in example was run on
// this machine. The remote counter is maintained separately by the backend;
// this one survives offline runs.
type UsageRepository struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// RecordRun bumps the per-example counter and the aggregate metadata key in
// one transaction, so the two can never drift apart.
func (r *UsageRepository) RecordRun(ctx context.Context, exampleIndex int) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO example_usage (example_index, runs) VALUES (?, 1)
			ON CONFLICT(example_index) DO UPDATE SET runs = runs + 1
		`, exampleIndex)
		if err != nil {
			return fmt.Errorf("failed to record run for example %d: %w", exampleIndex, err)
		}

		var raw []byte
		err = tx.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, totalRunsKey).Scan(&raw)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to read total runs: %w", err)
		}
		total, _ := strconv.ParseInt(string(raw), 10, 64)

		_, err = tx.ExecContext(ctx, `
			INSERT INTO metadata (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, totalRunsKey, []byte(strconv.FormatInt(total+1, 10)))
		if err != nil {
			return fmt.Errorf("failed to update total runs: %w", err)
		}
		return nil
	})
}

// Counts returns the local run count per example index.
func (r *UsageRepository) Counts(ctx context.Context) (map[int]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT example_index, runs FROM example_usage`)
	if err != nil {
		return nil, fmt.Errorf("failed to list example usage: %w", err)
	}
	defer rows.Close()

	result := make(map[int]int64)
	for rows.Next() {
		var idx int
		var runs int64
		if err := rows.Scan(&idx, &runs); err != nil {
			return nil, fmt.Errorf("failed to scan example usage row: %w", err)
		}
		result[idx] = runs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate example usage rows: %w", err)
	}

	return result, nil
}
