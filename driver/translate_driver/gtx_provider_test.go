package translate_driver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGtxResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["こんにちは","hello",null,null,10]],null,"en"]`,
			want: "こんにちは",
		},
		{
			name: "multiple segments concatenated",
			body: `[[["最初の文。","First sentence.",null,null,10],["次の文。","Next sentence.",null,null,10]],null,"en"]`,
			want: "最初の文。次の文。",
		},
		{
			name:    "not json",
			body:    "<html>rate limited</html>",
			wantErr: true,
		},
		{
			name:    "empty payload",
			body:    "[]",
			wantErr: true,
		},
		{
			name:    "no translation in payload",
			body:    `[[],null,"en"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGtxResponse([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGtxProviderTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gtx", r.URL.Query().Get("client"))
		assert.Equal(t, "en", r.URL.Query().Get("sl"))
		assert.Equal(t, "ja", r.URL.Query().Get("tl"))
		assert.Equal(t, "hello world", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["こんにちは世界","hello world",null,null,10]],null,"en"]`))
	}))
	defer server.Close()

	provider := NewGtxProvider(server.URL, 5*time.Second)

	got, err := provider.Translate(context.Background(), "hello world", "en", "ja")
	require.NoError(t, err)
	assert.Equal(t, "こんにちは世界", got)
}

func TestGtxProviderTranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewGtxProvider(server.URL, 5*time.Second)

	_, err := provider.Translate(context.Background(), "hello", "en", "ja")
	assert.Error(t, err)
}
