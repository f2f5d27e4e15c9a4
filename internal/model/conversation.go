package model

import (
	"time"
)

type ConversationPreviewList []ConversationPreview

// ConversationPreview is one row of the inbox listing.
type ConversationPreview struct {
	ConversationID       string     `json:"conversationId"`
	Title                string     `json:"title"`
	AvatarURL            string     `json:"avatarUrl,omitempty"`
	LastMessageContent   *string    `json:"lastMessageContent,omitempty"`
	LastMessageTimestamp *time.Time `json:"lastMessageTimestamp,omitempty"`
	UnreadCount          int        `json:"unreadCount"`
}

// Conversation is the server snapshot for a single chat: participant
// metadata, the optional property it was opened about, and the full
// message list. It lives only for the lifetime of an open session.
type Conversation struct {
	ID           string           `json:"id"`
	Participants []Participant    `json:"participants"`
	Property     *PropertyContext `json:"property,omitempty"`
	Messages     MessageList      `json:"messages"`
}

type Participant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	AvatarURL    string       `json:"avatarUrl,omitempty"`
	Role         string       `json:"role,omitempty"`
	Verification Verification `json:"verification"`
}

// Companion returns the first participant that is not the viewer.
func (c *Conversation) Companion(viewerID string) *Participant {
	for i := range c.Participants {
		if c.Participants[i].ID != viewerID {
			return &c.Participants[i]
		}
	}
	return nil
}

// PropertyContext is the listing a conversation was started about.
type PropertyContext struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	City     string `json:"city,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
