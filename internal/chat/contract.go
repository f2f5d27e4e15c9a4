//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package chat

import (
	"context"

	"github.com/hearthlane/chatkit/internal/client/messaging"
	"github.com/hearthlane/chatkit/internal/model"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
)

type MessagingAPI interface {
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	GetConversations(ctx context.Context) (model.ConversationPreviewList, error)
	GetOlderMessages(ctx context.Context, conversationID, cursor string, limit int) (model.MessageList, string, error)
	SendMessage(ctx context.Context, conversationID string, req messaging.SendMessageRequest) (*model.Message, error)
	MarkConversationRead(ctx context.Context, conversationID string) error
	Typing(ctx context.Context, conversationID string) error
	UploadVoiceNote(ctx context.Context, data []byte, durationSeconds int) (string, error)
}

type RequestValidator interface {
	ValidateSendMessage(req *messaging.SendMessageRequest) error
}

type Publisher interface {
	Publish(notice eventbus.Notice)
}
