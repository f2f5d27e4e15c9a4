package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hearthlane/chatkit/internal/chat"
	"github.com/hearthlane/chatkit/internal/model"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
	"github.com/hearthlane/chatkit/internal/voice"
)

const (
	refreshEvery   = time.Second
	typingDebounce = 2 * time.Second
	noticeLifetime = 4 * time.Second
)

// Model is the chat screen. All conversation state lives in the
// session; the model only holds what the terminal needs to render it.
type Model struct {
	session  *chat.Session
	recorder *voice.Recorder
	player   *voice.Player
	log      zerolog.Logger

	viewport viewport.Model
	input    textarea.Model

	width  int
	height int
	ready  bool

	messages model.MessageList
	selected int

	notice       string
	noticeLevel  string
	notices      chan eventbus.Notice
	unsubscribe  func()
	lastTypingAt time.Time

	sending      bool
	loadingOlder bool
}

type (
	refreshTickMsg time.Time
	noticeTimerMsg struct{}
	noticeMsg      eventbus.Notice

	sendResultMsg struct {
		err     error
		restore string
	}
	voiceResultMsg struct {
		err error
	}
	olderLoadedMsg struct {
		err error
	}
)

func NewModel(session *chat.Session, recorder *voice.Recorder, player *voice.Player, bus *eventbus.Bus, log zerolog.Logger) *Model {
	input := textarea.New()
	input.Placeholder = "Write a message…"
	input.CharLimit = 0
	input.ShowLineNumbers = false
	input.SetHeight(1)
	input.Focus()

	notices := make(chan eventbus.Notice, 8)
	unsubscribe := bus.Subscribe(func(n eventbus.Notice) {
		select {
		case notices <- n:
		default:
		}
	})

	return &Model{
		session:     session,
		recorder:    recorder,
		player:      player,
		log:         log,
		viewport:    viewport.New(0, 0),
		input:       input,
		messages:    session.Messages(),
		selected:    -1,
		notices:     notices,
		unsubscribe: unsubscribe,
	}
}

// Close releases everything the screen holds: the notice subscription,
// an active recording and any playing voice note.
func (m *Model) Close() {
	m.unsubscribe()
	m.recorder.Cancel()
	m.player.Stop()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.refreshTick(), m.waitForNotice())
}

func (m *Model) refreshTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (m *Model) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-m.notices)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case refreshTickMsg:
		m.messages = m.session.Messages()
		m.refreshViewport()
		return m, m.refreshTick()

	case noticeMsg:
		m.notice = msg.Text
		m.noticeLevel = msg.Level
		return m, tea.Batch(m.waitForNotice(), tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
			return noticeTimerMsg{}
		}))

	case noticeTimerMsg:
		m.notice = ""
		return m, nil

	case sendResultMsg:
		m.sending = false
		if msg.err != nil {
			// failed sends hand the text back to the compose field
			m.input.SetValue(msg.restore)
			if errors.Is(msg.err, chat.ErrSendInFlight) {
				m.notice = "Still sending the previous message…"
				m.noticeLevel = eventbus.LevelInfo
			}
		}
		m.messages = m.session.Messages()
		m.refreshViewport()
		return m, nil

	case voiceResultMsg:
		m.sending = false
		m.messages = m.session.Messages()
		m.refreshViewport()
		return m, nil

	case olderLoadedMsg:
		m.loadingOlder = false
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("older page failed")
		}
		m.messages = m.session.Messages()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		if m.recorder.Recording() {
			m.recorder.Cancel()
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		value := m.input.Value()
		m.input.Reset()
		if value == "" {
			return m, nil
		}
		m.sending = true
		return m, m.sendCmd(value)

	case tea.KeyCtrlR:
		return m, m.toggleRecording()

	case tea.KeyCtrlP:
		return m, m.togglePlayback()

	case tea.KeyUp:
		if m.input.Value() == "" {
			m.moveSelection(1)
			return m, nil
		}

	case tea.KeyDown:
		if m.input.Value() == "" {
			m.moveSelection(-1)
			return m, nil
		}

	case tea.KeyPgUp:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.AtTop() && !m.loadingOlder {
			m.loadingOlder = true
			return m, tea.Batch(cmd, m.loadOlderCmd())
		}
		return m, cmd

	case tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.typingCmd())
}

func (m *Model) sendCmd(content string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.session.SendText(context.Background(), content)
		return sendResultMsg{err: err, restore: content}
	}
}

func (m *Model) loadOlderCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.session.LoadOlder(context.Background())
		return olderLoadedMsg{err: err}
	}
}

// typingCmd signals the typing indicator at most once per debounce
// window. Best effort; the session swallows failures.
func (m *Model) typingCmd() tea.Cmd {
	if time.Since(m.lastTypingAt) < typingDebounce {
		return nil
	}
	m.lastTypingAt = time.Now()
	return func() tea.Msg {
		m.session.Typing(context.Background())
		return nil
	}
}

func (m *Model) toggleRecording() tea.Cmd {
	if !m.recorder.Recording() {
		if err := m.recorder.Start(context.Background()); err != nil {
			if errors.Is(err, voice.ErrPermissionDenied) {
				m.notice = "Microphone access is required to record voice notes."
				m.noticeLevel = eventbus.LevelError
			} else {
				m.log.Warn().Err(err).Msg("recording failed to start")
			}
		}
		return nil
	}

	clip, ok, err := m.recorder.Finish()
	if err != nil {
		m.log.Warn().Err(err).Msg("recording failed to stop")
		return nil
	}
	if !ok {
		// below the minimum: treated as an accidental tap
		return nil
	}

	m.sending = true
	return func() tea.Msg {
		_, err := m.session.SendVoice(context.Background(), clip.Data, clip.Duration)
		return voiceResultMsg{err: err}
	}
}

func (m *Model) togglePlayback() tea.Cmd {
	selected := m.selectedMessage()
	if selected == nil || selected.Type != model.VoiceMessageType || selected.VoiceNoteURL == "" {
		return nil
	}

	duration := time.Duration(selected.VoiceDuration) * time.Second
	if err := m.player.Toggle(context.Background(), selected.ID, selected.VoiceNoteURL, duration); err != nil {
		// playback trouble is non-critical: state already reset
		m.log.Debug().Err(err).Msg("playback failed")
	}
	return nil
}

// moveSelection walks the newest-first list; delta 1 selects older.
func (m *Model) moveSelection(delta int) {
	if len(m.messages) == 0 {
		m.selected = -1
		return
	}

	next := m.selected + delta
	if next < -1 {
		next = -1
	}
	if next >= len(m.messages) {
		next = len(m.messages) - 1
	}
	m.selected = next
	m.refreshViewport()
}

func (m *Model) selectedMessage() *model.Message {
	if m.selected < 0 || m.selected >= len(m.messages) {
		return nil
	}
	return &m.messages[m.selected]
}

func (m *Model) resize() {
	inputHeight := 3
	headerHeight := 2
	statusHeight := 1

	m.viewport.Width = m.width
	m.viewport.Height = m.height - inputHeight - headerHeight - statusHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.SetWidth(m.width - 2)
	m.refreshViewport()
}
