package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hearthlane/chatkit/internal/client/messaging"
	"github.com/hearthlane/chatkit/internal/model"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *Validator) ValidateSendMessage(req *messaging.SendMessageRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("message validation failed: %w", err)
	}

	switch req.Type {
	case model.VoiceMessageType:
		if req.VoiceNoteURL == "" {
			return fmt.Errorf("voice message requires a voice note url")
		}
		if req.VoiceDuration <= 0 {
			return fmt.Errorf("voice message requires a positive duration")
		}
	case model.DocumentMessageType, model.SystemMessageType, model.ImageMessageType:
		// content is optional for non-text kinds
	default:
		if strings.TrimSpace(req.Content) == "" {
			return fmt.Errorf("content cannot be empty")
		}
	}

	return nil
}
