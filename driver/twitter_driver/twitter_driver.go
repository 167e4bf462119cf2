// Package twitter_driver submits posts to the X (Twitter) v2 API using the
// four-part OAuth1 token set.
package twitter_driver

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

const defaultTweetEndpoint = "https://api.twitter.com/2/tweets"

// TwitterDriver posts tweets over an OAuth1-signed HTTP client.
type TwitterDriver struct {
	client   *http.Client
	endpoint string
}

// NewTwitterDriver builds the OAuth1 client from consumer and access
// credentials.
func NewTwitterDriver(apiKey, apiSecret, accessToken, accessSecret string) *TwitterDriver {
	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)

	client := config.Client(oauth1.NoContext, token)
	client.Timeout = 15 * time.Second

	return &TwitterDriver{
		client:   client,
		endpoint: defaultTweetEndpoint,
	}
}

// SetEndpoint overrides the tweet endpoint. Used by tests.
func (d *TwitterDriver) SetEndpoint(endpoint string) {
	d.endpoint = endpoint
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

// PostTweet submits one tweet and returns the platform-assigned ID.
func (d *TwitterDriver) PostTweet(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(tweetRequest{Text: text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tweet request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tweet rejected with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed tweetResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unexpected tweet response: %w", err)
	}
	if parsed.Data.ID == "" {
		return "", fmt.Errorf("tweet response carried no ID")
	}

	return parsed.Data.ID, nil
}
