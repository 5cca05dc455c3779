package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a fake Bot API server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.baseURL = server.URL + "/bot"
	return client
}

func TestGetMe_ParsesBotIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Mizan","username":"mizan_bot"}}`))
	})

	info, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), info.ID)
	assert.True(t, info.IsBot)
	assert.Equal(t, "mizan_bot", info.Username)
}

func TestSendMessage_SendsChatIDAndText(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	})

	err := client.SendMessage(context.Background(), 1234, "مرحبا")
	require.NoError(t, err)
	assert.Equal(t, float64(1234), received["chat_id"])
	assert.Equal(t, "مرحبا", received["text"])
}

func TestCall_APIFailureSurfacesDescription(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	})

	_, err := client.GetMe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")

	err = client.SetWebhook(context.Background(), "https://example.com/hook")
	assert.Error(t, err)
}
