package domain

import (
	"strconv"
	"time"
)

// Video is a cataloged source-channel video.
type Video struct {
	VideoID       string
	SourceChannel int64
	MessageID     int
	Title         string
	ThumbnailID   string
	Downloads     int
	CreatedAt     time.Time
}

// MessageSig identifies the original source-channel message, which lets the
// bot forward the video to a user without re-uploading it.
func (v Video) MessageSig() (string, int64) {
	return strconv.Itoa(v.MessageID), v.SourceChannel
}
