package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"acfinder/internal/model"
)

type RunSummary struct {
	ID            string
	CreatedAt     time.Time
	TargetBtu     *int
	TotalProducts int
}

// HistoryRepository reads past runs back out of Postgres.
type HistoryRepository struct {
	Pool *pgxpool.Pool
}

func (r *HistoryRepository) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := r.Pool.Query(context.Background(), `
		SELECT id, created_at, target_btu, total_products
		FROM ac_run
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.TargetBtu, &s.TotalProducts); err != nil {
			return nil, err
		}
		runs = append(runs, s)
	}

	return runs, rows.Err()
}

func (r *HistoryRepository) RunProducts(runID string) ([]model.Product, error) {
	rows, err := r.Pool.Query(context.Background(), `
		SELECT brand, name, btu, price, url, match_type
		FROM ac_run_product
		WHERE run_id = $1
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Brand, &p.Name, &p.Btu, &p.Price, &p.URL, &p.MatchType); err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, rows.Err()
}
