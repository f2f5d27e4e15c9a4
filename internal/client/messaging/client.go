package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hearthlane/chatkit/internal/config"
	"github.com/hearthlane/chatkit/internal/model"
)

// Client consumes the platform's messaging REST API. It owns no state
// beyond the connection; reconciliation happens in the chat session.
type Client struct {
	baseURL    string
	token      string
	viewerID   string
	httpClient *http.Client
}

func New(cfg *config.Config, viewerID string) *Client {
	return &Client{
		baseURL:  cfg.API.BaseURL,
		token:    cfg.API.Token,
		viewerID: viewerID,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// GetConversation fetches the full conversation snapshot: participants,
// property context and the complete latest message list, newest first.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	var resp struct {
		Conversation wireConversation `json:"conversation"`
	}
	path := fmt.Sprintf("/api/conversations/%s", url.PathEscape(conversationID))
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	conversation := resp.Conversation.toModel(c.viewerID)
	return &conversation, nil
}

// GetConversations fetches the inbox listing with last-message previews.
func (c *Client) GetConversations(ctx context.Context) (model.ConversationPreviewList, error) {
	var resp struct {
		Conversations model.ConversationPreviewList `json:"conversations"`
	}
	if err := c.getJSON(ctx, "/api/conversations", &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}

	return resp.Conversations, nil
}

// GetOlderMessages pages backward from cursor. An empty next cursor means
// the history is exhausted.
func (c *Client) GetOlderMessages(ctx context.Context, conversationID, cursor string, limit int) (model.MessageList, string, error) {
	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Messages   []wireMessage `json:"messages"`
		NextCursor string        `json:"nextCursor"`
	}
	path := fmt.Sprintf("/api/conversations/%s/messages?%s", url.PathEscape(conversationID), query.Encode())
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to fetch older messages: %w", err)
	}

	messages := make(model.MessageList, len(resp.Messages))
	for i, msg := range resp.Messages {
		messages[i] = msg.toModel(c.viewerID)
	}

	return messages, resp.NextCursor, nil
}

type SendMessageRequest struct {
	Content       string `json:"content" validate:"max=5000"`
	Type          string `json:"type" validate:"required,oneof=text inquiry offer counter_offer negotiation document system voice image"`
	VoiceNoteURL  string `json:"voiceNoteUrl,omitempty" validate:"omitempty,url"`
	VoiceDuration int    `json:"voiceDuration,omitempty" validate:"min=0"`
}

// SendMessage delivers one message and returns the server-confirmed
// record carrying the permanent ID.
func (c *Client) SendMessage(ctx context.Context, conversationID string, req SendMessageRequest) (*model.Message, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	path := fmt.Sprintf("/api/conversations/%s/messages", url.PathEscape(conversationID))
	httpReq, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var resp struct {
		Message wireMessage `json:"message"`
	}
	if err := c.do(httpReq, &resp); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	message := resp.Message.toModel(c.viewerID)
	return &message, nil
}

// MarkConversationRead flags every incoming message as read. Best effort
// on the caller's side; the session ignores failures.
func (c *Client) MarkConversationRead(ctx context.Context, conversationID string) error {
	path := fmt.Sprintf("/api/conversations/%s/read", url.PathEscape(conversationID))
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	return nil
}

// Typing signals a short-lived typing indicator. Fire and forget.
func (c *Client) Typing(ctx context.Context, conversationID string) error {
	path := fmt.Sprintf("/api/conversations/%s/typing", url.PathEscape(conversationID))
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return err
	}

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to send typing indicator: %w", err)
	}

	return nil
}

// UploadVoiceNote pushes a recorded clip as multipart form data and
// returns the asset URL to reference from a voice message.
func (c *Client) UploadVoiceNote(ctx context.Context, data []byte, durationSeconds int) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "voice-note.m4a")
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.WriteField("duration", strconv.Itoa(durationSeconds)); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/uploads/voice", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("failed to upload voice note: %w", err)
	}

	if resp.URL == "" {
		return "", fmt.Errorf("upload response is missing asset url")
	}

	return resp.URL, nil
}

// ----------------------------- helpers -----------------------------

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
