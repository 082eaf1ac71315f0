package handler

import (
	"fmt"
	"strings"

	"vidgate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start, optionally carrying a video deep link
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.users.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	videoID := extractVideoID(c.Message().Payload)

	result := h.verification.CheckAll(userID)
	if !result.AllJoined() {
		// Remember the requested video for after verification
		if videoID != "" {
			h.SetState(userID, &domain.StateData{PendingVideo: videoID})
		}
		return c.Send(h.messages.Welcome, channelMarkup(result.Statuses))
	}

	if videoID != "" {
		return h.deliverVideo(c, userID, videoID)
	}
	return c.Send(h.messages.Success)
}

// extractVideoID pulls a catalog id out of the /start deep-link payload
func extractVideoID(payload string) string {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "vid_") {
		return payload
	}
	return ""
}

// deliverVideo forwards the cataloged video to the user, respecting the
// daily quota
func (h *Handler) deliverVideo(c tele.Context, userID int64, videoID string) error {
	allowed, remaining, err := h.users.CheckDailyLimit(userID)
	if err != nil {
		h.logger.Error("Failed to check daily limit",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}
	if !allowed {
		return c.Send(fmt.Sprintf(h.messages.LimitReached, h.users.DailyLimit()))
	}

	video, err := h.videos.GetVideo(videoID)
	if err != nil {
		h.logger.Error("Failed to load video",
			zap.String("video_id", videoID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}
	if video == nil {
		return c.Send(h.messages.VideoNotFound)
	}

	if _, err := h.bot.Forward(tele.ChatID(userID), video); err != nil {
		h.logger.Error("Failed to forward video",
			zap.String("video_id", videoID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(h.messages.VideoNotFound)
	}

	h.videos.RecordDownload(videoID)
	if err := h.users.RecordDownload(userID); err != nil {
		h.logger.Warn("Failed to record download",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	if remaining < 0 {
		return c.Send("✅ Video sent!")
	}
	return c.Send(fmt.Sprintf(
		"✅ Video sent!\n\n📊 Today's remaining: %d/%d",
		remaining-1, h.users.DailyLimit(),
	))
}
