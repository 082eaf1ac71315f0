package service

import (
	"vidgate/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// MembershipChecker is the slice of the Telegram client the verification
// flow needs. *tele.Bot satisfies it.
type MembershipChecker interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// VerificationService checks a user's membership in the required channels.
// It holds no per-user state: every check queries the platform afresh.
type VerificationService struct {
	checker  MembershipChecker
	channels []domain.Channel
	logger   *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(checker MembershipChecker, channels []domain.Channel, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		checker:  checker,
		channels: channels,
		logger:   logger,
	}
}

// Channels returns the configured channel list, in order.
func (s *VerificationService) Channels() []domain.Channel {
	return s.channels
}

// CheckAll queries membership for every configured channel, one query per
// channel, in configured order.
func (s *VerificationService) CheckAll(userID int64) domain.VerificationResult {
	statuses := make([]domain.ChannelStatus, 0, len(s.channels))
	for _, ch := range s.channels {
		statuses = append(statuses, domain.ChannelStatus{
			Channel: ch,
			Joined:  s.isMember(ch, userID),
		})
	}
	return domain.VerificationResult{Statuses: statuses}
}

// isMember treats any query error as "not joined": a misconfigured or
// unreachable channel must not break the interaction.
func (s *VerificationService) isMember(ch domain.Channel, userID int64) bool {
	member, err := s.checker.ChatMemberOf(ch, tele.ChatID(userID))
	if err != nil {
		s.logger.Warn("Membership query failed, treating as not joined",
			zap.String("channel", ch.Ident),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false
	}

	switch member.Role {
	case tele.Creator, tele.Administrator, tele.Member, tele.Restricted:
		return true
	default:
		return false
	}
}
