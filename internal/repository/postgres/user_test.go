package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_GetUser(t *testing.T) {
	columns := []string{
		"user_id", "joined_at", "downloads_today", "last_download_date", "total_downloads", "is_premium",
	}
	joined := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	lastDownload := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectNil     bool
		expectedError bool
	}{
		{
			name:     "existing user",
			userID:   123,
			mockRows: sqlmock.NewRows(columns).AddRow(int64(123), joined, 5, lastDownload, 42, false),
		},
		{
			name:     "user without downloads",
			userID:   456,
			mockRows: sqlmock.NewRows(columns).AddRow(int64(456), joined, 0, nil, 0, true),
		},
		{
			name:      "user not exists",
			userID:    789,
			mockError: sql.ErrNoRows,
			expectNil: true,
		},
		{
			name:          "query error",
			userID:        123,
			mockError:     sql.ErrConnDone,
			expectNil:     true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT user_id, joined_at, downloads_today, last_download_date, total_downloads, is_premium\\s+FROM users\\s+WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetUser(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectNil {
				assert.Nil(t, user)
			} else {
				assert.NotNil(t, user)
				assert.Equal(t, tt.userID, user.UserID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetUser_LastDownloadDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	joined := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	lastDownload := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"user_id", "joined_at", "downloads_today", "last_download_date", "total_downloads", "is_premium",
	}).AddRow(int64(123), joined, 3, lastDownload, 10, false)

	mock.ExpectQuery("SELECT user_id, joined_at").WithArgs(int64(123)).WillReturnRows(rows)

	user, err := repo.GetUser(123)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotNil(t, user.LastDownloadDate)
	assert.Equal(t, lastDownload, *user.LastDownloadDate)
	assert.Equal(t, 3, user.DownloadsToday)
	assert.Equal(t, 10, user.TotalDownloads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureUserExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users \\(user_id\\)").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.EnsureUserExists(123)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ResetDailyDownloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users\\s+SET downloads_today = 0").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.ResetDailyDownloads(123)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_RecordDownload(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users\\s+SET downloads_today = downloads_today \\+ 1").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.RecordDownload(123)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountUsers()
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountActiveToday(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE last_download_date = CURRENT_DATE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveToday()
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
