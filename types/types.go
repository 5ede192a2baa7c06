// Package types contains shared data structures for icsterm.
package types

import (
	"strings"
	"time"
)

// ChatType classifies a line of chat text.
type ChatType int

const (
	Unknown ChatType = iota
	Tell
	PartnerTell
	ChannelTell
	Whisper
	Kibitz
	Shout
	Internal
	Outbound
)

var chatTypeNames = map[ChatType]string{
	Unknown:     "UNKNOWN",
	Tell:        "TELL",
	PartnerTell: "PARTNER_TELL",
	ChannelTell: "CHANNEL_TELL",
	Whisper:     "WHISPER",
	Kibitz:      "KIBITZ",
	Shout:       "SHOUT",
	Internal:    "INTERNAL",
	Outbound:    "OUTBOUND",
}

func (t ChatType) String() string {
	if name, ok := chatTypeNames[t]; ok {
		return name
	}
	return chatTypeNames[Unknown]
}

// ParseChatType returns the ChatType named s, or Unknown.
func ParseChatType(s string) ChatType {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range chatTypeNames {
		if name == s {
			return t
		}
	}
	return Unknown
}

// IsDirect returns true for chat addressed to the user personally.
func (t ChatType) IsDirect() bool {
	return t == Tell || t == PartnerTell
}

// ChatEvent is one line of chat received from, or sent to, the server.
type ChatEvent struct {
	Time    time.Time
	Type    ChatType
	Source  string // handle of the sender, empty for internal messages
	Channel string // channel number for channel tells
	GameID  string // game number for whispers and kibitzes
	Message string
}

// NewInternalEvent creates a client generated message.
func NewInternalEvent(message string) ChatEvent {
	return ChatEvent{
		Time:    time.Now(),
		Type:    Internal,
		Message: message,
	}
}
