// Package social_post_gateway adapts the Twitter driver to the social port.
package social_post_gateway

import (
	"context"
	stderrors "errors"

	"ainews/driver/twitter_driver"
	"ainews/utils/errors"
)

// SocialPostGateway implements social_post_port.SocialPostPort.
type SocialPostGateway struct {
	driver *twitter_driver.TwitterDriver
}

func NewSocialPostGateway(driver *twitter_driver.TwitterDriver) *SocialPostGateway {
	return &SocialPostGateway{driver: driver}
}

// Post submits one formatted text and returns the platform post ID.
func (g *SocialPostGateway) Post(ctx context.Context, text string) (string, error) {
	postID, err := g.driver.PostTweet(ctx, text)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return "", errors.TimeoutError("social platform did not answer in time", err, map[string]interface{}{
				"text_length": len(text),
			})
		}
		return "", errors.ExternalAPIError("social platform rejected post", err, map[string]interface{}{
			"text_length": len(text),
		})
	}
	return postID, nil
}
