package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketnav/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishNavigationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "navigation-events", newDiscardLogger())

	event := &service.NavigationEvent{
		RequestID:       "req-1",
		EventType:       service.EventNavigationStarted,
		SessionID:       "0b8a3c1e-5f7f-4d6b-9a51-7c3f8e6b2a10",
		UserID:          "5d1e2f3a-1111-2222-3333-444455556666",
		MarketID:        "9a8b7c6d-aaaa-bbbb-cccc-ddddeeeeffff",
		DestinationName: "Mama Nkechi Fabrics",
		Status:          "active",
		NavigationMode:  "walking",
		OccurredAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishNavigationEvent(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "projects/local/subscriptions/navigation-events-push", received.Subscription)
	assert.Equal(t, event.SessionID, received.Message.OrderingKey)
	assert.Equal(t, service.EventNavigationStarted, received.Message.Attributes["event_type"])
	assert.Equal(t, event.MarketID, received.Message.Attributes["market_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NavigationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.DestinationName, decoded.DestinationName)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, "", newDiscardLogger())

	err := publisher.PublishNavigationEvent(t.Context(), &service.NavigationEvent{
		EventType: service.EventNavigationCancelled,
		SessionID: "s-1",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.PublishNavigationEvent(t.Context(), &service.NavigationEvent{SessionID: "s-1"}))
	assert.NoError(t, publisher.Close())
}
