package handler

import (
	tele "gopkg.in/telebot.v3"
)

// stubContext records outbound sends/edits for handler tests. Methods not
// overridden panic via the embedded nil interface, which keeps tests honest
// about what a handler actually touches.
type stubContext struct {
	tele.Context

	sender  *tele.User
	editErr error

	sent      []string
	edited    []string
	responded int
}

func (c *stubContext) Sender() *tele.User { return c.sender }

func (c *stubContext) Callback() *tele.Callback {
	return &tele.Callback{ID: "callback-id"}
}

func (c *stubContext) Send(what interface{}, _ ...interface{}) error {
	if text, ok := what.(string); ok {
		c.sent = append(c.sent, text)
	}
	return nil
}

func (c *stubContext) Edit(what interface{}, _ ...interface{}) error {
	if c.editErr != nil {
		return c.editErr
	}
	if text, ok := what.(string); ok {
		c.edited = append(c.edited, text)
	}
	return nil
}

func (c *stubContext) Respond(_ ...*tele.CallbackResponse) error {
	c.responded++
	return nil
}
