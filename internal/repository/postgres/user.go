package postgres

import (
	"database/sql"

	"vidgate/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetUser returns the user record, nil if absent
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	var lastDownload sql.NullTime
	query := `
		SELECT user_id, joined_at, downloads_today, last_download_date, total_downloads, is_premium
		FROM users
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&u.UserID, &u.JoinedAt, &u.DownloadsToday, &lastDownload, &u.TotalDownloads, &u.Premium,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if lastDownload.Valid {
		u.LastDownloadDate = &lastDownload.Time
	}

	return &u, nil
}

// ResetDailyDownloads zeroes the per-day counter when a new day starts
func (r *UserRepo) ResetDailyDownloads(userID int64) error {
	query := `
		UPDATE users
		SET downloads_today = 0, last_download_date = CURRENT_DATE
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// RecordDownload bumps the per-day and lifetime counters
func (r *UserRepo) RecordDownload(userID int64) error {
	query := `
		UPDATE users
		SET downloads_today = downloads_today + 1,
			total_downloads = total_downloads + 1,
			last_download_date = CURRENT_DATE
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// CountUsers returns the total number of known users
func (r *UserRepo) CountUsers() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// CountActiveToday counts users who downloaded something today
func (r *UserRepo) CountActiveToday() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE last_download_date = CURRENT_DATE`
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}
