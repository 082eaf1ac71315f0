package repository

import (
	"vidgate/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUserExists(userID int64) error
	GetUser(userID int64) (*domain.User, error)
	ResetDailyDownloads(userID int64) error
	RecordDownload(userID int64) error
	CountUsers() (int, error)
	CountActiveToday() (int, error)
}

// VideoRepository defines video catalog operations
type VideoRepository interface {
	SaveVideo(video *domain.Video) error
	GetVideo(videoID string) (*domain.Video, error)
	DeleteVideo(videoID string) (bool, error)
	IncrementDownloads(videoID string) error
	ListRecent(limit int) ([]domain.Video, error)
}

// StatsRepository defines global counter operations
type StatsRepository interface {
	Increment(key string, delta int) error
	GetAll() (map[string]int, error)
}
