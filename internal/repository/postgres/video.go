package postgres

import (
	"database/sql"

	"vidgate/internal/domain"
)

// VideoRepo implements repository.VideoRepository
type VideoRepo struct {
	db *sql.DB
}

// NewVideoRepo creates a new video repository
func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// SaveVideo stores a newly cataloged video
func (r *VideoRepo) SaveVideo(video *domain.Video) error {
	query := `
		INSERT INTO videos (video_id, source_channel, message_id, title, thumbnail_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		video.VideoID, video.SourceChannel, video.MessageID, video.Title, video.ThumbnailID,
	)
	return err
}

// GetVideo returns the video by id, nil if absent
func (r *VideoRepo) GetVideo(videoID string) (*domain.Video, error) {
	var v domain.Video
	var title, thumbnail sql.NullString
	query := `
		SELECT video_id, source_channel, message_id, title, thumbnail_id, downloads, created_at
		FROM videos
		WHERE video_id = $1
	`
	err := r.db.QueryRow(query, videoID).Scan(
		&v.VideoID, &v.SourceChannel, &v.MessageID, &title, &thumbnail, &v.Downloads, &v.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	v.Title = title.String
	v.ThumbnailID = thumbnail.String

	return &v, nil
}

// DeleteVideo removes a video, reporting whether it existed
func (r *VideoRepo) DeleteVideo(videoID string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM videos WHERE video_id = $1`, videoID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// IncrementDownloads bumps the per-video download counter
func (r *VideoRepo) IncrementDownloads(videoID string) error {
	query := `UPDATE videos SET downloads = downloads + 1 WHERE video_id = $1`
	_, err := r.db.Exec(query, videoID)
	return err
}

// ListRecent returns the newest videos first
func (r *VideoRepo) ListRecent(limit int) ([]domain.Video, error) {
	query := `
		SELECT video_id, source_channel, message_id, title, thumbnail_id, downloads, created_at
		FROM videos
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		var title, thumbnail sql.NullString
		if err := rows.Scan(
			&v.VideoID, &v.SourceChannel, &v.MessageID, &title, &thumbnail, &v.Downloads, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.Title = title.String
		v.ThumbnailID = thumbnail.String
		videos = append(videos, v)
	}

	return videos, rows.Err()
}
