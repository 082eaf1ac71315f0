package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Menu button labels, kept for users still holding the old reply keyboard
const (
	labelSearch  = "🔍 Search"
	labelMyStats = "📊 My Stats"
	labelProfile = "👤 Profile"
	labelHelp    = "❓ Help"
	labelJoined  = "✅ I've Joined"
)

// handleText routes legacy menu button labels; other text is ignored
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch text {
	case labelSearch:
		return c.Send("🔍 Search\n\nSearch is coming soon!\nFor now, find videos in our public channels.")
	case labelMyStats:
		return h.handleMyStats(c)
	case labelProfile:
		return h.handleProfile(c)
	case labelHelp:
		return h.handleHelp(c)
	case labelJoined:
		return h.handleStart(c)
	}

	return nil
}

// handleHelp handles /help
func (h *Handler) handleHelp(c tele.Context) error {
	verified, err := h.requireVerified(c, c.Sender().ID)
	if !verified {
		return err
	}
	return c.Send(h.messages.Help)
}

// requireVerified gates a command behind channel membership. When the user
// is not verified it sends the verification prompt and reports false.
func (h *Handler) requireVerified(c tele.Context, userID int64) (bool, error) {
	result := h.verification.CheckAll(userID)
	if result.AllJoined() {
		return true, nil
	}
	return false, c.Send(h.messages.Welcome, channelMarkup(result.Statuses))
}

// handleMyStats handles /stats
func (h *Handler) handleMyStats(c tele.Context) error {
	userID := c.Sender().ID

	verified, err := h.requireVerified(c, userID)
	if !verified {
		return err
	}

	if err := h.users.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	user, err := h.users.GetUser(userID)
	if err != nil || user == nil {
		h.logger.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgInternalError)
	}

	_, remaining, err := h.users.CheckDailyLimit(userID)
	if err != nil {
		h.logger.Error("Failed to check daily limit", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgInternalError)
	}

	status := "👤 Regular"
	limitText := fmt.Sprintf("%d/%d", remaining, h.users.DailyLimit())
	if remaining < 0 {
		status = "⭐ Premium"
		limitText = "Unlimited"
	}

	text := fmt.Sprintf(
		"📊 Your Statistics\n\n"+
			"🏷️ Status: %s\n"+
			"📥 Today's Remaining: %s\n"+
			"📦 Total Downloads: %s\n"+
			"📅 Joined: %s",
		status, limitText,
		formatNumber(user.TotalDownloads),
		user.JoinedAt.Format("2006-01-02"),
	)
	return c.Send(text)
}

// handleProfile handles /profile
func (h *Handler) handleProfile(c tele.Context) error {
	sender := c.Sender()
	userID := sender.ID

	verified, err := h.requireVerified(c, userID)
	if !verified {
		return err
	}

	if err := h.users.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	user, err := h.users.GetUser(userID)
	if err != nil || user == nil {
		h.logger.Error("Failed to load user", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgInternalError)
	}

	_, remaining, err := h.users.CheckDailyLimit(userID)
	if err != nil {
		h.logger.Error("Failed to check daily limit", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgInternalError)
	}

	status := "👤 Regular Member"
	if remaining < 0 {
		status = "⭐ Premium Member"
	}

	text := fmt.Sprintf(
		"👤 Your Profile\n\n"+
			"🆔 ID: %d\n"+
			"👤 Name: %s\n"+
			"🏷️ Status: %s\n"+
			"📅 Member Since: %s",
		userID, sender.FirstName, status,
		user.JoinedAt.Format("2006-01-02"),
	)
	return c.Send(text)
}
