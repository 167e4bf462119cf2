package translate_driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GtxProvider calls the unauthenticated web translation endpoint. It is the
// fallback when no cloud credentials are configured or the primary provider
// is down. Its output tends to carry machine-translation artifacts, which the
// gateway's terminology pass cleans up afterwards.
type GtxProvider struct {
	endpoint string
	client   *http.Client
}

func NewGtxProvider(endpoint string, timeout time.Duration) *GtxProvider {
	return &GtxProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *GtxProvider) Name() string { return "gtx" }

func (p *GtxProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gtx request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gtx returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	return parseGtxResponse(body)
}

// parseGtxResponse walks the endpoint's nested-array payload:
// [[["translated","original",...],...],...]. Segment translations are
// concatenated in order.
func parseGtxResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("gtx response is not valid JSON: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("gtx response is empty")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected gtx response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if translated, ok := parts[0].(string); ok {
			sb.WriteString(translated)
		}
	}

	result := sb.String()
	if result == "" {
		return "", fmt.Errorf("gtx response contained no translation")
	}
	return result, nil
}
