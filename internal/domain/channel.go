package domain

import "strings"

// Channel is a required membership target on Telegram. Ident is either a
// public username (with or without the leading @) or a numeric chat id
// rendered as a string.
type Channel struct {
	Ident string
	Name  string
	Link  string
}

// Recipient returns the chat identifier the Telegram API expects,
// prefixing public usernames with @.
func (c Channel) Recipient() string {
	if strings.HasPrefix(c.Ident, "@") || strings.HasPrefix(c.Ident, "-") {
		return c.Ident
	}
	return "@" + c.Ident
}

// ChannelStatus is one channel's membership result within a single check.
type ChannelStatus struct {
	Channel Channel
	Joined  bool
}

// VerificationResult holds the per-channel results of one membership check,
// in configured channel order. Results are always computed fresh and never
// carried between checks.
type VerificationResult struct {
	Statuses []ChannelStatus
}

// AllJoined reports whether every required channel is satisfied.
// An empty channel list is trivially satisfied.
func (r VerificationResult) AllJoined() bool {
	for _, st := range r.Statuses {
		if !st.Joined {
			return false
		}
	}
	return true
}
