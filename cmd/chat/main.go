package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hearthlane/chatkit/internal/chat"
	"github.com/hearthlane/chatkit/internal/client/messaging"
	"github.com/hearthlane/chatkit/internal/config"
	"github.com/hearthlane/chatkit/internal/pkg/eventbus"
	"github.com/hearthlane/chatkit/internal/pkg/identity"
	"github.com/hearthlane/chatkit/internal/pkg/validator"
	"github.com/hearthlane/chatkit/internal/tui"
	"github.com/hearthlane/chatkit/internal/voice"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()

	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("chat exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	viewerID, err := identity.ViewerID(cfg.API.Token)
	if err != nil {
		return fmt.Errorf("failed to resolve viewer identity: %w", err)
	}

	client := messaging.New(cfg, viewerID)
	defer client.Close()

	conversationID := cfg.Chat.ConversationID
	if conversationID == "" {
		conversationID, err = latestConversation(ctx, client)
		if err != nil {
			return err
		}
	}

	bus := eventbus.New()
	session := chat.NewSession(client, validator.New(), bus, log, chat.Options{
		ConversationID: conversationID,
		ViewerID:       viewerID,
		PollInterval:   cfg.Chat.PollInterval,
		PageSize:       cfg.Chat.PageSize,
	})
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("failed to open conversation: %w", err)
	}
	defer session.Close()

	recorder := voice.NewRecorder(voice.NewSampleCapture(cfg.Voice.SamplePath), cfg.Voice.MinDuration)
	player := voice.NewPlayer(voice.TimedOutput{})

	screen := tui.NewModel(session, recorder, player, bus, log)
	defer screen.Close()

	program := tea.NewProgram(screen, tea.WithAltScreen())

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run chat screen: %w", err)
		}
		stop()
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		program.Quit()
		return nil
	})

	return group.Wait()
}

// latestConversation opens the most recently active chat when no
// conversation ID is configured.
func latestConversation(ctx context.Context, client *messaging.Client) (string, error) {
	previews, err := client.GetConversations(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list conversations: %w", err)
	}
	if len(previews) == 0 {
		return "", fmt.Errorf("no conversations to open")
	}
	return previews[0].ConversationID, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
