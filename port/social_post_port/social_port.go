package social_post_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=social_port.go -destination=../../mocks/mock_social_post_port.go -package=mocks

// SocialPostPort submits one formatted post to the social platform and
// returns the platform-assigned post ID.
type SocialPostPort interface {
	Post(ctx context.Context, text string) (string, error)
}
