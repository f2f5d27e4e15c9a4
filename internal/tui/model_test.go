package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlane/chatkit/internal/chat"
	"github.com/hearthlane/chatkit/internal/client/messaging"
	"github.com/hearthlane/chatkit/internal/model"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
	"github.com/hearthlane/chatkit/internal/pkg/validator"
	"github.com/hearthlane/chatkit/internal/voice"
)

type fakeAPI struct {
	conversation model.Conversation
	sent         []messaging.SendMessageRequest
}

func (f *fakeAPI) GetConversation(context.Context, string) (*model.Conversation, error) {
	conv := f.conversation
	return &conv, nil
}

func (f *fakeAPI) GetConversations(context.Context) (model.ConversationPreviewList, error) {
	return nil, nil
}

func (f *fakeAPI) GetOlderMessages(context.Context, string, string, int) (model.MessageList, string, error) {
	return nil, "", nil
}

func (f *fakeAPI) SendMessage(_ context.Context, _ string, req messaging.SendMessageRequest) (*model.Message, error) {
	f.sent = append(f.sent, req)
	return &model.Message{
		ID:        "m-confirmed",
		Content:   req.Content,
		Type:      req.Type,
		IsMine:    true,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeAPI) MarkConversationRead(context.Context, string) error { return nil }

func (f *fakeAPI) Typing(context.Context, string) error { return nil }

func (f *fakeAPI) UploadVoiceNote(context.Context, []byte, int) (string, error) {
	return "https://cdn.hearthlane.app/voice/abc.m4a", nil
}

func newTestScreen(t *testing.T, api *fakeAPI) (*Model, *chat.Session) {
	t.Helper()

	bus := eventbus.New()
	session := chat.NewSession(api, validator.New(), bus, zerolog.Nop(), chat.Options{
		ConversationID: "c-1",
		ViewerID:       "u-viewer",
		PollInterval:   time.Hour,
	})
	require.NoError(t, session.Start(context.Background()))
	t.Cleanup(session.Close)

	recorder := voice.NewRecorder(voice.NewSampleCapture(""), time.Second)
	player := voice.NewPlayer(voice.TimedOutput{})

	screen := NewModel(session, recorder, player, bus, zerolog.Nop())
	t.Cleanup(screen.Close)

	updated, _ := screen.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*Model), session
}

func fixtureConversation() model.Conversation {
	verified := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
	return model.Conversation{
		ID: "c-1",
		Participants: []model.Participant{
			{ID: "u-viewer", Name: "Alex Brennan"},
			{
				ID:   "u-agent",
				Name: "Marta Keller",
				Verification: model.Verification{
					Status:     model.VerificationApproved,
					VerifiedAt: &verified,
				},
			},
		},
		Property: &model.PropertyContext{
			ID:    "p-7",
			Title: "Canal-side loft",
			City:  "Utrecht",
		},
		Messages: model.MessageList{
			{
				ID:            "m-2",
				Type:          model.VoiceMessageType,
				VoiceNoteURL:  "https://cdn.hearthlane.app/voice/m-2.m4a",
				VoiceDuration: 64,
				SenderID:      "u-agent",
				SenderName:    "Marta Keller",
				CreatedAt:     time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:        "m-1",
				Content:   "Is the loft still available?",
				Type:      model.TextMessageType,
				SenderID:  "u-viewer",
				IsMine:    true,
				IsRead:    true,
				CreatedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestViewRendersConversation(t *testing.T) {
	screen, _ := newTestScreen(t, &fakeAPI{conversation: fixtureConversation()})

	view := screen.View()
	assert.Contains(t, view, "Marta Keller")
	assert.Contains(t, view, "verified")
	assert.Contains(t, view, "Canal-side loft")
	assert.Contains(t, view, "voice note (1:04)")
	assert.Contains(t, view, "Is the loft still available?")
}

func TestEnterSendsComposedText(t *testing.T) {
	api := &fakeAPI{conversation: fixtureConversation()}
	screen, session := newTestScreen(t, api)

	screen.input.SetValue("Yes, when can you view it?")
	updated, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	screen = updated.(*Model)
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(sendResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)

	require.Len(t, api.sent, 1)
	assert.Equal(t, "Yes, when can you view it?", api.sent[0].Content)
	assert.Equal(t, "", screen.input.Value())
	assert.Equal(t, "m-confirmed", session.Messages()[0].ID)
}

func TestEnterWithEmptyInputIsIgnored(t *testing.T) {
	api := &fakeAPI{conversation: fixtureConversation()}
	screen, _ := newTestScreen(t, api)

	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, api.sent)
}

func TestSelectionWalksMessages(t *testing.T) {
	screen, _ := newTestScreen(t, &fakeAPI{conversation: fixtureConversation()})
	updated, _ := screen.Update(refreshTickMsg(time.Now()))
	screen = updated.(*Model)

	require.Nil(t, screen.selectedMessage())

	updated, _ = screen.Update(tea.KeyMsg{Type: tea.KeyUp})
	screen = updated.(*Model)
	require.NotNil(t, screen.selectedMessage())
	assert.Equal(t, "m-2", screen.selectedMessage().ID)

	updated, _ = screen.Update(tea.KeyMsg{Type: tea.KeyUp})
	screen = updated.(*Model)
	assert.Equal(t, "m-1", screen.selectedMessage().ID)

	// walking past the oldest message stays on it
	updated, _ = screen.Update(tea.KeyMsg{Type: tea.KeyUp})
	screen = updated.(*Model)
	assert.Equal(t, "m-1", screen.selectedMessage().ID)

	updated, _ = screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	screen = updated.(*Model)
	updated, _ = screen.Update(tea.KeyMsg{Type: tea.KeyDown})
	screen = updated.(*Model)
	assert.Nil(t, screen.selectedMessage())
}

func TestRecordingWithoutMicrophoneShowsNotice(t *testing.T) {
	screen, _ := newTestScreen(t, &fakeAPI{conversation: fixtureConversation()})

	// SampleCapture with no sample path denies the permission request
	updated, _ := screen.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	screen = updated.(*Model)

	assert.Contains(t, screen.View(), "Microphone access is required")
}

func TestNoticeFromBusReachesStatusLine(t *testing.T) {
	screen, _ := newTestScreen(t, &fakeAPI{conversation: fixtureConversation()})

	updated, _ := screen.Update(noticeMsg(eventbus.Notice{
		Level: eventbus.LevelError,
		Text:  "Message not sent. Check your connection and try again.",
	}))
	screen = updated.(*Model)
	assert.Contains(t, screen.View(), "Message not sent")

	updated, _ = screen.Update(noticeTimerMsg{})
	screen = updated.(*Model)
	assert.NotContains(t, screen.View(), "Message not sent")
}
