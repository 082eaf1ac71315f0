package handler

import (
	"testing"

	"vidgate/internal/config"
	"vidgate/internal/domain"
	"vidgate/internal/service"
	"vidgate/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

func newMenuHandler(checker *testutil.MockMembershipChecker) *Handler {
	channels := []domain.Channel{testutil.NewTestChannel("alpha")}
	return &Handler{
		verification: service.NewVerificationService(checker, channels, testutil.NewTestLogger()),
		messages: config.Messages{
			Welcome: "WELCOME",
			Help:    "HELP",
		},
		logger: testutil.NewTestLogger(),
		states: make(map[int64]*domain.StateData),
	}
}

func TestHandleHelp_Verified(t *testing.T) {
	checker := new(testutil.MockMembershipChecker)
	checker.On("ChatMemberOf", mock.Anything, mock.Anything).
		Return(&tele.ChatMember{Role: tele.Member}, nil)

	h := newMenuHandler(checker)
	ctx := &stubContext{sender: &tele.User{ID: 7}}

	err := h.handleHelp(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"HELP"}, ctx.sent)
	checker.AssertNumberOfCalls(t, "ChatMemberOf", 1)
}

func TestHandleHelp_Unverified(t *testing.T) {
	checker := new(testutil.MockMembershipChecker)
	checker.On("ChatMemberOf", mock.Anything, mock.Anything).
		Return(&tele.ChatMember{Role: tele.Left}, nil)

	h := newMenuHandler(checker)
	ctx := &stubContext{sender: &tele.User{ID: 7}}

	err := h.handleHelp(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"WELCOME"}, ctx.sent)
	assert.NotContains(t, ctx.sent, "HELP")
}
