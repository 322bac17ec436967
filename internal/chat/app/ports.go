package app

import (
	"context"

	"github.com/dwikikusuma/ja-fashion/internal/chat/domain"
)

// Provider streams a completion. The content channel carries text deltas
// and is closed when the reply ends; at most one error is sent on the
// error channel, which is closed afterwards. Implementations stop sending
// once ctx is done.
type Provider interface {
	Stream(ctx context.Context, system string, messages []domain.Message) (<-chan string, <-chan error)
}
