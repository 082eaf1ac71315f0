package handler

import (
	"vidgate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// channelMarkup renders one URL button per channel, labelled with that
// channel's own membership result, plus the recheck button. Button order
// follows the configured channel order.
func channelMarkup(statuses []domain.ChannelStatus) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(statuses)+1)

	for _, st := range statuses {
		rows = append(rows, markup.Row(markup.URL(channelLabel(st), st.Channel.Link)))
	}
	rows = append(rows, markup.Row(markup.Data(btnRecheck.Text, btnRecheck.Unique)))

	markup.Inline(rows...)
	return markup
}

func channelLabel(st domain.ChannelStatus) string {
	if st.Joined {
		return "✅ " + st.Channel.Name
	}
	return "❌ " + st.Channel.Name
}

// handleVerify handles the recheck button: re-run the membership checks and
// edit the prompt in place
func (h *Handler) handleVerify(c tele.Context) error {
	userID := c.Sender().ID

	result := h.verification.CheckAll(userID)

	if !result.AllJoined() {
		text := h.messages.NotJoined + "\n\n" + h.messages.Welcome
		markup := channelMarkup(result.Statuses)
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already up to date, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}

	h.logger.Info("User verified", zap.Int64("user_id", userID))

	// Editing without markup drops the keyboard
	if err := c.Edit(h.messages.Success); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr != nil {
			if sendErr := c.Send(h.messages.Success); sendErr != nil {
				return sendErr
			}
		}
	} else if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	// Deliver the video the user originally asked for, if any
	state := h.GetState(userID)
	if state.PendingVideo != "" {
		videoID := state.PendingVideo
		h.ResetState(userID)
		return h.deliverVideo(c, userID, videoID)
	}
	return nil
}
