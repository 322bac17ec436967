package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/chat/domain"
)

var ErrInvalidInput = errors.New("invalid input")

const DefaultSystemPrompt = "You are a helpful assistant."

type Service struct {
	provider Provider
	system   string
}

func NewService(provider Provider, systemPrompt string) *Service {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Service{provider: provider, system: systemPrompt}
}

// Reply relays the conversation to the provider. Client supplied system
// messages are dropped; the configured prompt always leads.
func (s *Service) Reply(ctx context.Context, messages []domain.Message) (<-chan string, <-chan error, error) {
	conv := make([]domain.Message, 0, len(messages))
	for i, m := range messages {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		if !domain.ValidRole(role) {
			return nil, nil, fmt.Errorf("%w: message %d has unknown role %q", ErrInvalidInput, i, m.Role)
		}
		if role == domain.RoleSystem || strings.TrimSpace(m.Content) == "" {
			continue
		}
		conv = append(conv, domain.Message{Role: role, Content: m.Content})
	}
	if len(conv) == 0 {
		return nil, nil, fmt.Errorf("%w: messages are required", ErrInvalidInput)
	}

	out, errs := s.provider.Stream(ctx, s.system, conv)
	return out, errs, nil
}
