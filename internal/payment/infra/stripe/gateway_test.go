package stripe

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/payment/app"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresSecretKey(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestCreateIntentSendsPKRWithAutomaticMethods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "250050", r.PostForm.Get("amount"))
		assert.Equal(t, "pkr", r.PostForm.Get("currency"))
		assert.Equal(t, "true", r.PostForm.Get("automatic_payment_methods[enabled]"))
		assert.Equal(t, "order-1", r.PostForm.Get("metadata[order_id]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","amount":250050,"currency":"pkr"}`))
	}))
	defer srv.Close()

	g, err := New(Config{SecretKey: "sk_test_x", BaseURL: srv.URL})
	require.NoError(t, err)

	intent, err := g.CreateIntent(context.Background(), app.IntentRequest{
		Amount:   money.FromRupees(2500.5),
		Metadata: map[string]string{"order_id": "order-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, app.Intent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, intent)
}

func TestCreateIntentSurfacesProcessorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Amount must be at least Rs 140.","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	g, err := New(Config{SecretKey: "sk_test_x", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = g.CreateIntent(context.Background(), app.IntentRequest{Amount: 100})
	require.Error(t, err)
	assert.Equal(t, "Amount must be at least Rs 140.", err.Error())
}

func sign(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhook(t *testing.T) {
	g, err := New(Config{SecretKey: "sk_test_x", WebhookSecret: "whsec_test"})
	require.NoError(t, err)

	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","api_version":"2020-08-27",
		"data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"order_id":"order-9"}}}}`)

	ev, err := g.Verify(payload, sign("whsec_test", payload, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, app.Event{ID: "evt_1", Type: "payment_intent.succeeded", PaymentIntentID: "pi_1", OrderID: "order-9"}, ev)

	_, err = g.Verify(payload, sign("whsec_other", payload, time.Now()))
	assert.Error(t, err)

	_, err = g.Verify(payload, sign("whsec_test", payload, time.Now().Add(-time.Hour)))
	assert.Error(t, err, "stale timestamps are rejected")
}
