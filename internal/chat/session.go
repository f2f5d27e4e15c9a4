package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hearthlane/chatkit/internal/client/messaging"
	"github.com/hearthlane/chatkit/internal/model"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
)

const (
	defaultPollInterval = 6 * time.Second
	defaultPageSize     = 30
)

// ErrSendInFlight is returned when a send is requested while another one
// is still in flight for the same conversation. The attempt is dropped,
// not queued; the caller keeps the composed text and may retry.
var ErrSendInFlight = errors.New("another send is already in flight")

const sendFailedNotice = "Message not sent. Check your connection and try again."

type Options struct {
	ConversationID string
	ViewerID       string
	PollInterval   time.Duration
	PageSize       int
}

// Session owns the live state of one open conversation: the message
// store, the pending-send guard and the background poller. It is created
// when a chat is opened and discarded when it is closed; nothing it
// holds survives Close.
type Session struct {
	api       MessagingAPI
	validator RequestValidator
	bus       Publisher
	log       zerolog.Logger

	conversationID string
	viewerID       string
	pollInterval   time.Duration
	pageSize       int

	store *Store

	mu           sync.Mutex
	sending      bool
	markedRead   bool
	conversation *model.Conversation
	cursor       string
	exhausted    bool

	cancel  context.CancelFunc
	done    chan struct{}
	started bool

	now        func() time.Time
	newLocalID func() string
}

func NewSession(api MessagingAPI, validator RequestValidator, bus Publisher, log zerolog.Logger, opts Options) *Session {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}

	return &Session{
		api:            api,
		validator:      validator,
		bus:            bus,
		log:            log.With().Str("conversation_id", opts.ConversationID).Logger(),
		conversationID: opts.ConversationID,
		viewerID:       opts.ViewerID,
		pollInterval:   opts.PollInterval,
		pageSize:       opts.PageSize,
		store:          NewStore(),
		now:            time.Now,
		newLocalID:     newLocalID,
	}
}

// newLocalID mints a device-local message ID: prefixed, time-ordered,
// with enough randomness to never collide within a session.
func newLocalID() string {
	return fmt.Sprintf("%s%d-%s", model.LocalIDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Start performs the initial fetch and launches the background poller.
// The initial fetch failing is returned to the caller; once running,
// poll failures only log and leave the current view untouched.
func (s *Session) Start(ctx context.Context) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}

	pollCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started = true
	s.mu.Unlock()

	go s.pollLoop(pollCtx)

	return nil
}

// Close stops the poller and waits for it to exit. In-flight sends are
// not aborted; they resolve against a store nobody reads anymore.
func (s *Session) Close() {
	s.mu.Lock()
	started := s.started
	cancel := s.cancel
	done := s.done
	s.started = false
	s.mu.Unlock()

	if !started {
		return
	}

	cancel()
	<-done
}

func (s *Session) pollLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

// pollOnce runs one poll tick. Ticks are skipped entirely while a send
// is in flight so a snapshot can never race the optimistic append or
// its confirmation within the same instant.
func (s *Session) pollOnce(ctx context.Context) {
	s.mu.Lock()
	sending := s.sending
	s.mu.Unlock()

	if sending {
		return
	}

	if err := s.refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("poll refresh failed")
	}
}

// refresh fetches the full conversation snapshot and merges it. On
// fetch failure the store is left untouched: stale-but-present beats a
// blanked screen. The first successful fetch also marks the
// conversation read, best effort.
func (s *Session) refresh(ctx context.Context) error {
	conversation, err := s.api.GetConversation(ctx, s.conversationID)
	if err != nil {
		return fmt.Errorf("failed to refresh conversation: %w", err)
	}

	s.store.MergeSnapshot(conversation.Messages)

	meta := *conversation
	meta.Messages = nil

	s.mu.Lock()
	s.conversation = &meta
	firstFetch := !s.markedRead
	s.markedRead = true
	s.mu.Unlock()

	if firstFetch {
		if err := s.api.MarkConversationRead(ctx, s.conversationID); err != nil {
			s.log.Debug().Err(err).Msg("mark-as-read failed")
		}
	}

	return nil
}

// SendText sends a text message through the optimistic pipeline: the
// entry is visible before the network call and is reconciled with the
// server record, or rolled back, when the call resolves.
func (s *Session) SendText(ctx context.Context, content string) (model.Message, error) {
	req := messaging.SendMessageRequest{
		Content: content,
		Type:    model.TextMessageType,
	}
	if err := s.validator.ValidateSendMessage(&req); err != nil {
		return model.Message{}, err
	}

	local := model.Message{
		ID:        s.newLocalID(),
		Content:   content,
		SenderID:  s.viewerID,
		IsMine:    true,
		Type:      model.TextMessageType,
		CreatedAt: s.now(),
	}

	if err := s.acquireSend(local); err != nil {
		return model.Message{}, err
	}

	return s.resolveSend(ctx, local, req)
}

// SendVoice uploads a recorded clip and sends the message referencing
// it. Both network steps sit inside the same single-flight window; a
// failure at either one rolls the optimistic entry back identically.
func (s *Session) SendVoice(ctx context.Context, data []byte, duration time.Duration) (model.Message, error) {
	seconds := int(duration.Round(time.Second).Seconds())
	if seconds <= 0 {
		seconds = 1
	}

	local := model.Message{
		ID:            s.newLocalID(),
		SenderID:      s.viewerID,
		IsMine:        true,
		Type:          model.VoiceMessageType,
		CreatedAt:     s.now(),
		VoiceDuration: seconds,
	}

	if err := s.acquireSend(local); err != nil {
		return model.Message{}, err
	}

	assetURL, err := s.api.UploadVoiceNote(ctx, data, seconds)
	if err != nil {
		return s.failSend(local, fmt.Errorf("failed to upload voice note: %w", err))
	}

	req := messaging.SendMessageRequest{
		Type:          model.VoiceMessageType,
		VoiceNoteURL:  assetURL,
		VoiceDuration: seconds,
	}
	if err := s.validator.ValidateSendMessage(&req); err != nil {
		return s.failSend(local, err)
	}

	return s.resolveSend(ctx, local, req)
}

// acquireSend takes the single-flight slot and appends the optimistic
// entry. The slot is taken before the append so a poll tick arriving in
// between already sees the send in flight.
func (s *Session) acquireSend(local model.Message) error {
	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return ErrSendInFlight
	}
	s.sending = true
	s.mu.Unlock()

	s.store.AppendPending(local)
	return nil
}

func (s *Session) resolveSend(ctx context.Context, local model.Message, req messaging.SendMessageRequest) (model.Message, error) {
	confirmed, err := s.api.SendMessage(ctx, s.conversationID, req)
	if err != nil {
		return s.failSend(local, fmt.Errorf("failed to send message: %w", err))
	}

	s.store.Confirm(local.ID, *confirmed)
	s.releaseSend()

	return *confirmed, nil
}

func (s *Session) failSend(local model.Message, err error) (model.Message, error) {
	s.store.Drop(local.ID)
	s.releaseSend()

	s.log.Warn().Err(err).Msg("send rolled back")
	s.bus.Publish(eventbus.Notice{Level: eventbus.LevelError, Text: sendFailedNotice})

	return model.Message{}, err
}

func (s *Session) releaseSend() {
	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// LoadOlder fetches one backward page and attaches it to the tail.
// Returns true while more history may remain.
func (s *Session) LoadOlder(ctx context.Context) (bool, error) {
	s.mu.Lock()
	cursor := s.cursor
	exhausted := s.exhausted
	s.mu.Unlock()

	if exhausted {
		return false, nil
	}
	if cursor == "" {
		cursor = s.store.OldestID()
	}
	if cursor == "" {
		return false, nil
	}

	older, next, err := s.api.GetOlderMessages(ctx, s.conversationID, cursor, s.pageSize)
	if err != nil {
		return true, fmt.Errorf("failed to load older messages: %w", err)
	}

	s.store.AppendOlder(older)

	s.mu.Lock()
	s.cursor = next
	s.exhausted = next == "" || len(older) == 0
	more := !s.exhausted
	s.mu.Unlock()

	return more, nil
}

// Typing signals the typing indicator, best effort.
func (s *Session) Typing(ctx context.Context) {
	if err := s.api.Typing(ctx, s.conversationID); err != nil {
		s.log.Debug().Err(err).Msg("typing signal failed")
	}
}

// Messages returns a copy of the current list, newest first.
func (s *Session) Messages() model.MessageList {
	return s.store.Snapshot()
}

// ViewerID is the authenticated user the session acts as.
func (s *Session) ViewerID() string {
	return s.viewerID
}

// Conversation returns the latest fetched metadata, without messages.
func (s *Session) Conversation() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversation
}
