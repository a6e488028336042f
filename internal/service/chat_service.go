package service

import (
	"context"
	"errors"

	"healieve/health-app/internal/chat"
	"healieve/health-app/internal/logger"
)

// --- Error Definitions ---
var (
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
	ErrChatUnavailable = errors.New("chat service unavailable")
)

// ChatService forwards prompts to the LLM provider.
type ChatService interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

type chatService struct {
	client *chat.Client
	log    *logger.Logger
}

// NewChatService creates a new instance of chatService.
func NewChatService(client *chat.Client, log *logger.Logger) ChatService {
	return &chatService{client: client, log: log}
}

// Ask forwards one prompt. A provider failure surfaces as a generic error;
// there are no retries.
func (s *chatService) Ask(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("chat generation failed", "error", err)
		return "", ErrChatUnavailable
	}
	return text, nil
}
