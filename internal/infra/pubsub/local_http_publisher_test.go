package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	var received PubSubPushMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	event := &service.OrderPlacedEvent{
		OrderID:    uuid.New(),
		UserID:     uuid.New(),
		TotalPrice: "6960.00",
		ItemCount:  2,
		PlacedAt:   time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, event.OrderID.String(), received.Message.Attributes["order_id"])
	assert.Equal(t, event.UserID.String(), received.Message.Attributes["user_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, "6960.00", decoded.TotalPrice)
	assert.Equal(t, 2, decoded.ItemCount)
}

func TestLocalHTTPPublisher_ConsumerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewLocalHTTPPublisher(server.URL, logger)

	err := publisher.PublishOrderPlaced(context.Background(), &service.OrderPlacedEvent{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
	})
	assert.Error(t, err)
}
