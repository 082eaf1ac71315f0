package postgres

import (
	"database/sql"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Increment bumps a named counter, creating it on first use
func (r *StatsRepo) Increment(key string, delta int) error {
	query := `
		INSERT INTO stats (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = stats.value + $2
	`
	_, err := r.db.Exec(query, key, delta)
	return err
}

// GetAll returns every counter
func (r *StatsRepo) GetAll() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT key, value FROM stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		stats[key] = value
	}

	return stats, rows.Err()
}
