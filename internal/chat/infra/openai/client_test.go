package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/chat/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(out <-chan string, errs <-chan error) (string, error) {
	var sb strings.Builder
	for s := range out {
		sb.WriteString(s)
	}
	return sb.String(), <-errs
}

func TestStreamRelaysDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.True(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, domain.Message{Role: "system", Content: "You are a helpful assistant."}, req.Messages[0])

		w.Header().Set("Content-Type", "text/event-stream")
		for _, d := range []string{"Ajrak ", "is ", "block printed."} {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", d)
		}
		fmt.Fprint(w, ": keep-alive\n\ndata: {\"choices\":[]}\n\ndata: [DONE]\n\n")
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL}, logger.Discard())
	require.NoError(t, err)

	text, err := collect(c.Stream(context.Background(), "You are a helpful assistant.", []domain.Message{{Role: "user", Content: "What is ajrak?"}}))
	require.NoError(t, err)
	assert.Equal(t, "Ajrak is block printed.", text)
}

func TestStreamUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL}, logger.Discard())
	require.NoError(t, err)

	text, err := collect(c.Stream(context.Background(), "sys", []domain.Message{{Role: "user", Content: "hi"}}))
	assert.Empty(t, text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestStreamErrorChunk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"error\":{\"message\":\"overloaded\"}}\n\n")
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL}, logger.Discard())
	require.NoError(t, err)

	text, err := collect(c.Stream(context.Background(), "sys", []domain.Message{{Role: "user", Content: "hi"}}))
	assert.Equal(t, "partial", text)
	assert.EqualError(t, err, "openai: overloaded")
}

func TestStreamStopsWhenCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 64; i++ {
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\n\n")
		}
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL}, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	out, errs := c.Stream(ctx, "sys", []domain.Message{{Role: "user", Content: "hi"}})
	<-out
	cancel()

	_, err = collect(out, errs)
	assert.Error(t, err)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)
}
