package distance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LoadRows reads the full distance matrix from the database.
// Rows are ordered for deterministic construction.
func LoadRows(ctx context.Context, db *sql.DB) ([]MatrixRow, error) {
	if db == nil {
		return nil, errors.New("load distance matrix: db is nil")
	}

	query := `
	SELECT
		origin,
		destination,
		distance_km,
		duration_minutes
	FROM distances
	ORDER BY origin, destination;
	`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load distance matrix: query distances table: %w", err)
	}
	defer rows.Close()

	out := make([]MatrixRow, 0, 32)
	for rows.Next() {
		var r MatrixRow
		if err := rows.Scan(&r.From, &r.To, &r.Km, &r.Minutes); err != nil {
			return nil, fmt.Errorf("load distance matrix: scan row: %w", err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load distance matrix: row iteration: %w", err)
	}

	return out, nil
}
