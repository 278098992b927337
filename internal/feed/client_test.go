package feed

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessages(t *testing.T) {
	mockJSONResponse := `[
		{
			"thread_key": "chat-main",
			"sender": "(555) 210-3001",
			"text": "Wordle 789 3/6",
			"observed_at": "2025-07-07T09:14:00Z"
		},
		{
			"thread_key": "chat-family",
			"sender": "(555) 210-3101",
			"text": "anyone up for lunch?",
			"observed_at": "2025-07-07T09:15:00Z"
		}
	]`

	since := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, since.Format(time.RFC3339), r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := APIClient{
		httpClient: server.Client(),
		BaseURL:    server.URL,
	}

	messages, err := client.GetMessages(since)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "chat-main", messages[0].ThreadKey)
	assert.Equal(t, "(555) 210-3001", messages[0].Sender)
	assert.Equal(t, "Wordle 789 3/6", messages[0].Text)
	assert.Equal(t, time.Date(2025, 7, 7, 9, 14, 0, 0, time.UTC), messages[0].ObservedAt)
}

func TestGetMessagesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := APIClient{
		httpClient: server.Client(),
		BaseURL:    server.URL,
	}

	_, err := client.GetMessages(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
