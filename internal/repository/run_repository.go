package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"acfinder/internal/model"
)

// RunRepository stores finished runs in Postgres. Tables:
//
//	ac_run(id, created_at, target_btu, total_products)
//	ac_run_product(id, run_id, brand, name, btu, price, url, match_type)
type RunRepository struct {
	DB *sql.DB
}

func (r *RunRepository) SaveRun(s model.Snapshot) (string, error) {
	runID := uuid.New().String()

	_, err := r.DB.Exec(`
		INSERT INTO ac_run (id, created_at, target_btu, total_products)
		VALUES ($1, $2, $3, $4)
	`, runID, s.Timestamp, s.TargetBtu, s.TotalProducts)
	if err != nil {
		return "", err
	}

	for _, p := range s.Products {
		_, err = r.DB.Exec(`
			INSERT INTO ac_run_product
			(id, run_id, brand, name, btu, price, url, match_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.New().String(), runID, p.Brand, p.Name, p.Btu, p.Price, p.URL, p.MatchType)
		if err != nil {
			return "", err
		}
	}

	return runID, nil
}
