package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGracefulReturnsStopError(t *testing.T) {
	boom := errors.New("boom")
	err := Graceful(time.Second, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestGracefulTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	err := Graceful(20*time.Millisecond, func(ctx context.Context) error {
		<-release
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithSignalsCancelPropagates(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithSignals(parent)
	defer cancel()

	cancelParent()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled with parent")
	}
}
