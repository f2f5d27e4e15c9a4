package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hearthlane/chatkit/internal/model"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	verifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	propertyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Center)
	mineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	theirsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	recordingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	noticeStyles   = map[string]lipgloss.Style{
		eventbus.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		eventbus.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		eventbus.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

func (m *Model) View() string {
	if !m.ready {
		return "loading…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.statusView(),
		m.input.View(),
	)
}

func (m *Model) headerView() string {
	conv := m.session.Conversation()
	if conv == nil {
		return headerStyle.Render("Conversation") + "\n"
	}

	title := "Conversation"
	if companion := conv.Companion(m.session.ViewerID()); companion != nil {
		title = companion.Name
		if companion.Verification.Verified() {
			title += " " + verifiedStyle.Render("✓ verified")
		}
	}

	header := headerStyle.Render(title)
	if conv.Property != nil {
		header += "\n" + propertyStyle.Render(fmt.Sprintf("%s · %s", conv.Property.Title, conv.Property.City))
	} else {
		header += "\n"
	}
	return header
}

func (m *Model) statusView() string {
	if m.recorder.Recording() {
		return recordingStyle.Render(fmt.Sprintf("● recording %ds  (ctrl+r to send, esc to cancel)", m.recorder.Elapsed()))
	}
	if m.notice != "" {
		style, ok := noticeStyles[m.noticeLevel]
		if !ok {
			style = metaStyle
		}
		return style.Render(m.notice)
	}
	if m.loadingOlder {
		return metaStyle.Render("loading earlier messages…")
	}
	if m.sending {
		return metaStyle.Render("sending…")
	}
	return metaStyle.Render("enter send · ctrl+r record · ↑↓ select · ctrl+p play · pgup history")
}

// refreshViewport redraws the transcript. Messages are stored
// newest-first; the terminal reads top-down, so rendering walks the
// list backwards and inserts a separator whenever the day changes.
func (m *Model) refreshViewport() {
	wasAtBottom := m.viewport.AtBottom()

	var b strings.Builder
	lastDay := ""
	for i := len(m.messages) - 1; i >= 0; i-- {
		msg := m.messages[i]
		if day := msg.DateKey(); day != lastDay {
			b.WriteString(separatorStyle.Width(m.viewport.Width).Render(day))
			b.WriteString("\n")
			lastDay = day
		}
		b.WriteString(m.renderMessage(msg, i == m.selected))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) renderMessage(msg model.Message, selected bool) string {
	body := msg.Content
	switch msg.Type {
	case model.VoiceMessageType:
		label := "▶"
		if m.player.Playing() == msg.ID {
			label = "■"
		}
		body = fmt.Sprintf("%s voice note (%s)", label, formatDuration(msg.VoiceDuration))
	case model.SystemMessageType:
		return separatorStyle.Width(m.viewport.Width).Render(msg.Content)
	case model.DocumentMessageType:
		body = "📄 " + msg.Content
	case model.ImageMessageType:
		body = "🖼 " + msg.Content
	}

	style := theirsStyle
	prefix := msg.SenderName
	if prefix == "" {
		prefix = "them"
	}
	if msg.IsMine {
		style = mineStyle
		prefix = "you"
	}
	if msg.IsLocal() {
		style = pendingStyle
	}

	line := fmt.Sprintf("%s  %s: %s", msg.CreatedAt.Local().Format("15:04"), prefix, body)
	if msg.IsMine {
		if msg.IsLocal() {
			line += metaStyle.Render(" ◌")
		} else if msg.IsRead {
			line += metaStyle.Render(" ✓✓")
		} else {
			line += metaStyle.Render(" ✓")
		}
	}

	if selected {
		return selectedStyle.Render("› ") + style.Render(line)
	}
	return "  " + style.Render(line)
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), seconds%60)
}
