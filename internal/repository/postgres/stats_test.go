package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStatsRepo_Increment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	mock.ExpectExec("INSERT INTO stats \\(key, value\\)").
		WithArgs("total_downloads", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Increment("total_downloads", 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow("total_videos", 12).
		AddRow("total_downloads", 340)

	mock.ExpectQuery("SELECT key, value FROM stats").WillReturnRows(rows)

	stats, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"total_videos": 12, "total_downloads": 340}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepo_GetAll_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStatsRepo(db)

	mock.ExpectQuery("SELECT key, value FROM stats").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	stats, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
