package postgres

import (
	"database/sql"
	"testing"
	"time"

	"vidgate/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var videoColumns = []string{
	"video_id", "source_channel", "message_id", "title", "thumbnail_id", "downloads", "created_at",
}

func TestVideoRepo_SaveVideo(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepo(db)

	video := &domain.Video{
		VideoID:       "vid_abc12345",
		SourceChannel: -1003573156420,
		MessageID:     99,
		Title:         "Test Video",
		ThumbnailID:   "thumb-file-id",
	}

	mock.ExpectExec("INSERT INTO videos").
		WithArgs(video.VideoID, video.SourceChannel, video.MessageID, video.Title, video.ThumbnailID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveVideo(video)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_GetVideo(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		videoID   string
		mockRows  *sqlmock.Rows
		mockError error
		expectNil bool
		expectErr bool
	}{
		{
			name:    "existing video",
			videoID: "vid_abc12345",
			mockRows: sqlmock.NewRows(videoColumns).
				AddRow("vid_abc12345", int64(-1003573156420), 99, "Test Video", "thumb-file-id", 5, created),
		},
		{
			name:    "video with null title",
			videoID: "vid_notitle1",
			mockRows: sqlmock.NewRows(videoColumns).
				AddRow("vid_notitle1", int64(-1003573156420), 100, nil, nil, 0, created),
		},
		{
			name:      "missing video",
			videoID:   "vid_missing1",
			mockError: sql.ErrNoRows,
			expectNil: true,
		},
		{
			name:      "query error",
			videoID:   "vid_abc12345",
			mockError: sql.ErrConnDone,
			expectNil: true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVideoRepo(db)

			query := "SELECT video_id, source_channel, message_id, title, thumbnail_id, downloads, created_at\\s+FROM videos\\s+WHERE video_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.videoID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.videoID).WillReturnRows(tt.mockRows)
			}

			video, err := repo.GetVideo(tt.videoID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectNil {
				assert.Nil(t, video)
			} else {
				assert.NotNil(t, video)
				assert.Equal(t, tt.videoID, video.VideoID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepo_DeleteVideo(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{
			name:         "video deleted",
			rowsAffected: 1,
			expected:     true,
		},
		{
			name:         "video not found",
			rowsAffected: 0,
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVideoRepo(db)

			mock.ExpectExec("DELETE FROM videos WHERE video_id = \\$1").
				WithArgs("vid_abc12345").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			deleted, err := repo.DeleteVideo("vid_abc12345")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVideoRepo_IncrementDownloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepo(db)

	mock.ExpectExec("UPDATE videos SET downloads = downloads \\+ 1").
		WithArgs("vid_abc12345").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.IncrementDownloads("vid_abc12345")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepo_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepo(db)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(videoColumns).
		AddRow("vid_newest00", int64(-1), 2, "Newest", "t2", 1, created).
		AddRow("vid_older000", int64(-1), 1, "Older", "t1", 9, created.Add(-time.Hour))

	mock.ExpectQuery("SELECT video_id, source_channel, message_id, title, thumbnail_id, downloads, created_at\\s+FROM videos\\s+ORDER BY created_at DESC\\s+LIMIT \\$1").
		WithArgs(10).
		WillReturnRows(rows)

	videos, err := repo.ListRecent(10)
	assert.NoError(t, err)
	assert.Len(t, videos, 2)
	assert.Equal(t, "vid_newest00", videos[0].VideoID)
	assert.Equal(t, "Older", videos[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
