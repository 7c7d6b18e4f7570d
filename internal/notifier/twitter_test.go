package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwitterNotifier_Post(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/2/tweets", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": "1846000000000000001", "text": gotBody["text"]},
		})
	}))
	defer srv.Close()

	n := &TwitterNotifier{
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	id, err := n.Post(context.Background(), "Day 1 of posting pigeon under 941M mcap 🐦")
	require.NoError(t, err)
	assert.Equal(t, "1846000000000000001", id)
	assert.Equal(t, "Day 1 of posting pigeon under 941M mcap 🐦", gotBody["text"])
}

func TestTwitterNotifier_PostAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"title":"Forbidden"}`))
	}))
	defer srv.Close()

	n := &TwitterNotifier{
		BaseURL: srv.URL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}

	_, err := n.Post(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}
