package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"vidgate/internal/domain"
	"vidgate/internal/repository"

	"go.uber.org/zap"
)

const (
	videoIDPrefix   = "vid_"
	videoIDLength   = 8
	videoIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	untitledVideo = "Untitled Video"
)

var markdownChars = regexp.MustCompile("[*_`\\[\\]]")

// VideoService handles the video catalog and its counters
type VideoService struct {
	videoRepo repository.VideoRepository
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

// NewVideoService creates a new video service
func NewVideoService(videoRepo repository.VideoRepository, statsRepo repository.StatsRepository, logger *zap.Logger) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// SaveVideo catalogs a paired source-channel video and returns its id
func (s *VideoService) SaveVideo(sourceChannel int64, messageID int, title, thumbnailID string) (string, error) {
	videoID, err := generateVideoID()
	if err != nil {
		return "", fmt.Errorf("generate video id: %w", err)
	}

	video := &domain.Video{
		VideoID:       videoID,
		SourceChannel: sourceChannel,
		MessageID:     messageID,
		Title:         title,
		ThumbnailID:   thumbnailID,
	}
	if err := s.videoRepo.SaveVideo(video); err != nil {
		return "", err
	}

	if err := s.statsRepo.Increment("total_videos", 1); err != nil {
		s.logger.Warn("Failed to update video counter", zap.Error(err))
	}

	s.logger.Info("Video saved",
		zap.String("video_id", videoID),
		zap.String("title", title),
	)
	return videoID, nil
}

// GetVideo returns the video by id, nil if unknown
func (s *VideoService) GetVideo(videoID string) (*domain.Video, error) {
	return s.videoRepo.GetVideo(videoID)
}

// DeleteVideo removes a video, reporting whether it existed
func (s *VideoService) DeleteVideo(videoID string) (bool, error) {
	return s.videoRepo.DeleteVideo(videoID)
}

// ListRecent returns the newest videos first
func (s *VideoService) ListRecent(limit int) ([]domain.Video, error) {
	return s.videoRepo.ListRecent(limit)
}

// RecordDownload bumps the per-video and global download counters.
// Counter failures are logged, not surfaced: the video was already sent.
func (s *VideoService) RecordDownload(videoID string) {
	if err := s.videoRepo.IncrementDownloads(videoID); err != nil {
		s.logger.Warn("Failed to increment video downloads",
			zap.String("video_id", videoID),
			zap.Error(err),
		)
	}
	if err := s.statsRepo.Increment("total_downloads", 1); err != nil {
		s.logger.Warn("Failed to update download counter", zap.Error(err))
	}
}

func generateVideoID() (string, error) {
	id := make([]byte, videoIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(videoIDAlphabet))))
		if err != nil {
			return "", err
		}
		id[i] = videoIDAlphabet[n.Int64()]
	}
	return videoIDPrefix + string(id), nil
}

// SanitizeTitle extracts a clean display title from a post caption:
// first line, at most 100 characters, markdown markers removed.
func SanitizeTitle(caption string) string {
	if caption == "" {
		return untitledVideo
	}

	title := caption
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}

	runes := []rune(title)
	if len(runes) > 100 {
		title = string(runes[:100])
	}

	title = markdownChars.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return untitledVideo
	}
	return title
}
