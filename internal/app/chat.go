package app

import (
	"context"
	"fmt"

	"tripmate/internal/domain"
)

// Instruction templates shipped with every conversational call. The
// model sees the user's name and question embedded in a fixed frame.
const (
	chatPromptFmt = "My name is %s. I'm planning a trip. You are my travel assistant. " +
		"Please answer this question '%s'. Try to act as an assistant and be casual rather than very formal."
	recommendPromptFmt = "My name is %s. You are my travel assistant. " +
		"Please recommend hotels, places and activities for this request: '%s'. Keep it short and casual."
)

type ChatService struct {
	repo      domain.ChatRepository
	assistant domain.AssistantClient
}

func NewChatService(repo domain.ChatRepository, assistant domain.AssistantClient) *ChatService {
	return &ChatService{repo: repo, assistant: assistant}
}

// Send forwards the templated prompt, persists the exchange and returns
// the assistant text verbatim.
func (s *ChatService) Send(ctx context.Context, userID, userName, text string) (string, error) {
	reply, err := s.assistant.Generate(ctx, fmt.Sprintf(chatPromptFmt, userName, text))
	if err != nil {
		return "", fmt.Errorf("%w: assistant: %v", domain.ErrUpstream, err)
	}
	if _, err := s.repo.AppendTurn(ctx, domain.ChatTurn{UserID: userID, User: text, Assistant: reply}); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return reply, nil
}

// Predict is the raw passthrough: no template, no persistence.
func (s *ChatService) Predict(ctx context.Context, prompt string) (string, error) {
	reply, err := s.assistant.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: assistant: %v", domain.ErrUpstream, err)
	}
	return reply, nil
}

// Recommend answers a recommendation request without recording a turn.
func (s *ChatService) Recommend(ctx context.Context, userName, text string) (string, error) {
	reply, err := s.assistant.Generate(ctx, fmt.Sprintf(recommendPromptFmt, userName, text))
	if err != nil {
		return "", fmt.Errorf("%w: assistant: %v", domain.ErrUpstream, err)
	}
	return reply, nil
}

// History returns the user's turns in store order.
func (s *ChatService) History(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	turns, err := s.repo.ListTurns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return turns, nil
}

// Purge deletes all turns for the user; zero matches is still success.
func (s *ChatService) Purge(ctx context.Context, userID string) error {
	if err := s.repo.PurgeTurns(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return nil
}
