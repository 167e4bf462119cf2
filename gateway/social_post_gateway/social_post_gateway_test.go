package social_post_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainews/driver/twitter_driver"
	"ainews/utils/errors"
)

func newGatewayFor(t *testing.T, handler http.HandlerFunc) *SocialPostGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	driver := twitter_driver.NewTwitterDriver("k", "s", "t", "ts")
	driver.SetEndpoint(server.URL)
	return NewSocialPostGateway(driver)
}

func TestPostReturnsPlatformID(t *testing.T) {
	gateway := newGatewayFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1234567890","text":"本文"}}`))
	})

	postID, err := gateway.Post(context.Background(), "本文")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", postID)
}

func TestPostClassifiesRejection(t *testing.T) {
	gateway := newGatewayFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"duplicate content"}`))
	})

	_, err := gateway.Post(context.Background(), "本文")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeExternalAPI, appErr.Code)
}

func TestPostClassifiesTimeout(t *testing.T) {
	gateway := newGatewayFor(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := gateway.Post(ctx, "本文")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeTimeout, appErr.Code)
}
