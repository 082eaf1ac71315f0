package domain

import "time"

// User is a bot user record.
type User struct {
	UserID           int64
	JoinedAt         time.Time
	DownloadsToday   int
	LastDownloadDate *time.Time
	TotalDownloads   int
	Premium          bool
}

// StateData holds in-memory data for a user's current interaction.
// It is never persisted; a restart simply forgets pending deliveries.
type StateData struct {
	PendingVideo string
}
