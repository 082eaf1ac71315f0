package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Admin restricts a handler to the configured admin ids.
func Admin(adminIDs []int64, logger *zap.Logger) tele.MiddlewareFunc {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !admins[userID] {
				logger.Warn("Admin command from non-admin",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Send("❌ You don't have access to the admin panel.")
			}

			return next(c)
		}
	}
}
