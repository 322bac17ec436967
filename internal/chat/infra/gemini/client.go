// Package gemini streams chat replies through the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/chat/domain"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

type Client struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func New(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = slog.Default()
	}

	cc := &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: cfg.Model, log: log.With(slog.String("provider", "gemini"))}, nil
}

// toContents maps the conversation onto Gemini roles: assistant turns
// become "model", everything else is sent as the user.
func toContents(messages []domain.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.NewContentFromText(m.Content, role))
	}
	return out
}

func (c *Client) Stream(ctx context.Context, system string, messages []domain.Message) (<-chan string, <-chan error) {
	out := make(chan string, 16)
	errs := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errs)

		start := time.Now()
		cfg := &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
		for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, toContents(messages), cfg) {
			if err != nil {
				c.log.Warn("chat stream failed", slog.Duration("elapsed", time.Since(start)), slog.String("err", err.Error()))
				errs <- fmt.Errorf("gemini: %w", err)
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case out <- text:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
		c.log.Debug("chat stream completed", slog.Duration("elapsed", time.Since(start)))
	}()

	return out, errs
}
