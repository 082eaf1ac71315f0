package handler

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const adminPanelText = "⚙️ Admin Panel\n\nSelect an option:"

func adminMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnAdminStats, btnAdminUsers),
		menu.Row(btnAdminVideos, btnAdminSettings),
	)
	return menu
}

func adminBackMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnAdminBack))
	return menu
}

// handlePanel handles /panel (admin-gated by middleware)
func (h *Handler) handlePanel(c tele.Context) error {
	return c.Send(adminPanelText, adminMenuMarkup())
}

// handleAdminBack returns to the panel menu
func (h *Handler) handleAdminBack(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}
	return h.editOrSend(c, adminPanelText, adminMenuMarkup())
}

// handleAdminStats shows global post statistics
func (h *Handler) handleAdminStats(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}

	totals, err := h.stats.Totals()
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load stats"})
	}

	text := fmt.Sprintf(
		"📊 Post Statistics\n\n"+
			"🎬 Total Videos: %s\n"+
			"📥 Total Downloads: %s\n"+
			"👥 Total Users: %s",
		formatNumber(totals.Videos),
		formatNumber(totals.Downloads),
		formatNumber(totals.Users),
	)
	return h.editOrSend(c, text, adminBackMarkup())
}

// handleAdminUsers shows user statistics
func (h *Handler) handleAdminUsers(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}

	totals, err := h.stats.Totals()
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load stats"})
	}

	text := fmt.Sprintf(
		"👥 User Statistics\n\n"+
			"📊 Total Users: %s\n"+
			"🟢 Active Today: %s",
		formatNumber(totals.Users),
		formatNumber(totals.ActiveToday),
	)
	return h.editOrSend(c, text, adminBackMarkup())
}

// handleAdminSettings shows the running configuration
func (h *Handler) handleAdminSettings(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}

	text := adminSettingsText(h.users.DailyLimit(), h.sourceChanID, h.targetChans)
	return h.editOrSend(c, text, adminBackMarkup())
}

func adminSettingsText(dailyLimit int, sourceChannel int64, targetChannels []int64) string {
	source := "Not set"
	if sourceChannel != 0 {
		source = strconv.FormatInt(sourceChannel, 10)
	}
	return fmt.Sprintf(
		"⚙️ Settings\n\n"+
			"📥 Daily Limit: %d\n"+
			"📺 Source Channel: %s\n"+
			"📢 Target Channels: %d",
		dailyLimit, source, len(targetChannels),
	)
}

// handleAdminVideos shows recent videos with delete buttons
func (h *Handler) handleAdminVideos(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}

	text, markup, err := h.adminVideoList()
	if err != nil {
		h.logger.Error("Failed to list videos", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load videos"})
	}
	return h.editOrSend(c, text, markup)
}

// handleVideoDelete removes a video and re-renders the list
func (h *Handler) handleVideoDelete(c tele.Context) error {
	userID := c.Sender().ID
	if !h.isAdmin(userID) {
		return c.Respond(&tele.CallbackResponse{Text: "No access"})
	}

	videoID := cleanCallbackData(c.Callback().Data)

	deleted, err := h.videos.DeleteVideo(videoID)
	if err != nil {
		h.logger.Error("Failed to delete video",
			zap.String("video_id", videoID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to delete video"})
	}
	if !deleted {
		return c.Respond(&tele.CallbackResponse{Text: "Video not found"})
	}

	h.logger.Info("Video deleted",
		zap.String("video_id", videoID),
		zap.Int64("admin_id", userID),
	)
	if err := c.Respond(&tele.CallbackResponse{Text: "🗑️ Deleted " + videoID}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	text, markup, err := h.adminVideoList()
	if err != nil {
		h.logger.Error("Failed to list videos", zap.Error(err))
		return nil
	}
	if err := c.Edit(text, markup); err != nil {
		h.logger.Warn("Failed to refresh video list", zap.Error(err))
	}
	return nil
}

func (h *Handler) adminVideoList() (string, *tele.ReplyMarkup, error) {
	videos, err := h.videos.ListRecent(10)
	if err != nil {
		return "", nil, err
	}

	if len(videos) == 0 {
		return "No videos yet.", adminBackMarkup(), nil
	}

	text := "🎬 Recent Videos:\n\n"
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(videos)+1)

	for _, v := range videos {
		title := v.Title
		if runes := []rune(title); len(runes) > 25 {
			title = string(runes[:25]) + "…"
		}
		text += fmt.Sprintf("• %s — %s (%d📥)\n", v.VideoID, title, v.Downloads)
		rows = append(rows, markup.Row(markup.Data("🗑️ "+v.VideoID, btnDeleteVideo.Unique, v.VideoID)))
	}

	text += "\nTap to delete:"
	rows = append(rows, markup.Row(markup.Data(btnAdminBack.Text, btnAdminBack.Unique)))
	markup.Inline(rows...)

	return text, markup, nil
}

// formatNumber renders a count with a K/M suffix
func formatNumber(num int) string {
	switch {
	case num >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(num)/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.1fK", float64(num)/1_000)
	default:
		return fmt.Sprintf("%d", num)
	}
}
