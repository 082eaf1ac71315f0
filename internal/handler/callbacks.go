package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified, just acknowledge the callback. Otherwise, acknowledge and
// return the error so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback is the fallback for callback queries that didn't route to
// a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	unique := callback.Unique
	if unique == "" {
		unique = data
	}

	switch unique {
	case btnRecheck.Unique:
		return h.handleVerify(c)
	case btnAdminStats.Unique:
		return h.handleAdminStats(c)
	case btnAdminUsers.Unique:
		return h.handleAdminUsers(c)
	case btnAdminVideos.Unique:
		return h.handleAdminVideos(c)
	case btnAdminSettings.Unique:
		return h.handleAdminSettings(c)
	case btnAdminBack.Unique:
		return h.handleAdminBack(c)
	case btnDeleteVideo.Unique:
		return h.handleVideoDelete(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// editOrSend edits the message behind a callback, falling back to a new
// message, and acknowledges the callback. Plain commands just send.
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	userID := c.Sender().ID
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}
