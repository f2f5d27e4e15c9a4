package model

import (
	"time"
)

const (
	TextMessageType         = "text"
	InquiryMessageType      = "inquiry"
	OfferMessageType        = "offer"
	CounterOfferMessageType = "counter_offer"
	NegotiationMessageType  = "negotiation"
	DocumentMessageType     = "document"
	SystemMessageType       = "system"
	VoiceMessageType        = "voice"
	ImageMessageType        = "image"
)

// LocalIDPrefix marks message IDs minted on this device before the server
// has assigned a permanent one.
const LocalIDPrefix = "pending-"

type MessageList []Message

type Message struct {
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	SenderID      string     `json:"senderId"`
	SenderName    string     `json:"senderName,omitempty"`
	IsMine        bool       `json:"isMine"`
	Type          string     `json:"type"`
	CreatedAt     time.Time  `json:"createdAt"`
	IsRead        bool       `json:"isRead"`
	ReadAt        *time.Time `json:"readAt,omitempty"`
	VoiceNoteURL  string     `json:"voiceNoteUrl,omitempty"`
	VoiceDuration int        `json:"voiceDuration,omitempty"`
}

// IsLocal reports whether the message still carries a device-minted ID,
// i.e. it has not been confirmed by the server yet.
func (m Message) IsLocal() bool {
	return len(m.ID) > len(LocalIDPrefix) && m.ID[:len(LocalIDPrefix)] == LocalIDPrefix
}

// DateKey groups messages for date-separator rendering.
func (m Message) DateKey() string {
	return m.CreatedAt.Local().Format("2006-01-02")
}
