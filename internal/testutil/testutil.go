package testutil

import (
	"time"

	"vidgate/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestChannel creates a test channel with derived name and link
func NewTestChannel(ident string) domain.Channel {
	return domain.Channel{
		Ident: ident,
		Name:  ident,
		Link:  "https://t.me/" + ident,
	}
}

// NewTestUser creates a test user
func NewTestUser(userID int64, downloadsToday int, lastDownload *time.Time) *domain.User {
	return &domain.User{
		UserID:           userID,
		JoinedAt:         time.Now().AddDate(0, -1, 0),
		DownloadsToday:   downloadsToday,
		LastDownloadDate: lastDownload,
	}
}

// NewTestVideo creates a test video
func NewTestVideo(videoID, title string) *domain.Video {
	return &domain.Video{
		VideoID:       videoID,
		SourceChannel: -1003573156420,
		MessageID:     42,
		Title:         title,
		ThumbnailID:   "thumb-file-id",
		CreatedAt:     time.Now(),
	}
}
