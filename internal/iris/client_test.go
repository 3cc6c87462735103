package iris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kapu/botkit-go/internal/constants"
	"github.com/kapu/botkit-go/internal/util"
	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendMessagePostsReply(t *testing.T) {
	var got ReplyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reply", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	require.NoError(t, client.SendMessage(context.Background(), "room-1", "hello"))
	require.Equal(t, ReplyRequest{Type: "text", Room: "room-1", Data: "hello"}, got)
}

func TestSendMessageOpensCircuitAfterFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	threshold := constants.CircuitBreakerConfig.FailureThreshold

	for range threshold {
		err := client.SendMessage(context.Background(), "room-1", "hi")
		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	}
	require.Equal(t, util.CircuitStateOpen, client.breaker.State())

	err := client.SendMessage(context.Background(), "room-1", "hi")
	var svcErr *errors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.EqualValues(t, threshold, calls.Load())
}

func TestGetConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/config", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Config{Port: 3000, BotName: "kit", BotID: "42"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())
	cfg, err := client.GetConfig(context.Background())

	require.NoError(t, err)
	require.Equal(t, "42", cfg.BotID)
	require.True(t, client.Ping(context.Background()))
}
