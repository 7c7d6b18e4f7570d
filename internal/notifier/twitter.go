package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
)

const twitterAPIBase = "https://api.twitter.com"

// TwitterNotifier posts tweets via the X API v2 using OAuth 1.0a
// user-context credentials.
type TwitterNotifier struct {
	BaseURL string
	Client  *http.Client
}

// NewTwitterNotifier builds an HTTP client that signs every request with
// the given consumer and access token pair.
func NewTwitterNotifier(apiKey, apiSecret, accessToken, accessSecret string) *TwitterNotifier {
	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	client := config.Client(oauth1.NoContext, token)
	client.Timeout = 30 * time.Second
	return &TwitterNotifier{
		BaseURL: twitterAPIBase,
		Client:  client,
	}
}

func (t *TwitterNotifier) Name() string { return "twitter" }

// Post creates a tweet and returns its ID.
func (t *TwitterNotifier) Post(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", fmt.Errorf("marshal tweet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/2/tweets", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("create tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("twitter API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode tweet response: %w", err)
	}
	if result.Data.ID == "" {
		return "", fmt.Errorf("twitter API returned no tweet id")
	}
	return result.Data.ID, nil
}
