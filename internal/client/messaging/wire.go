package messaging

import (
	"time"

	"github.com/hearthlane/chatkit/internal/model"
)

// wireMessage is the raw message record as the API returns it. The
// isMine flag is authoritative when present; older backend versions omit
// it, in which case ownership falls back to a sender comparison.
type wireMessage struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	SenderID  string     `json:"senderId"`
	IsMine    *bool      `json:"isMine"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt"`
	Sender    *struct {
		Name string `json:"name"`
	} `json:"sender"`
	VoiceNoteURL  string `json:"voiceNoteUrl"`
	VoiceDuration int    `json:"voiceDuration"`
}

func (w wireMessage) toModel(viewerID string) model.Message {
	isMine := w.SenderID == viewerID
	if w.IsMine != nil {
		isMine = *w.IsMine
	}

	msg := model.Message{
		ID:            w.ID,
		Content:       w.Content,
		SenderID:      w.SenderID,
		IsMine:        isMine,
		Type:          w.Type,
		CreatedAt:     w.CreatedAt,
		IsRead:        w.IsRead,
		ReadAt:        w.ReadAt,
		VoiceNoteURL:  w.VoiceNoteURL,
		VoiceDuration: w.VoiceDuration,
	}
	if msg.Type == "" {
		msg.Type = model.TextMessageType
	}
	if w.Sender != nil {
		msg.SenderName = w.Sender.Name
	}

	return msg
}

type wireConversation struct {
	ID           string                 `json:"id"`
	Participants []model.Participant    `json:"participants"`
	Property     *model.PropertyContext `json:"property"`
	Messages     []wireMessage          `json:"messages"`
}

func (w wireConversation) toModel(viewerID string) model.Conversation {
	messages := make(model.MessageList, len(w.Messages))
	for i, msg := range w.Messages {
		messages[i] = msg.toModel(viewerID)
	}

	return model.Conversation{
		ID:           w.ID,
		Participants: w.Participants,
		Property:     w.Property,
		Messages:     messages,
	}
}
