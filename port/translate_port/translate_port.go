package translate_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=translate_port.go -destination=../../mocks/mock_translate_port.go -package=mocks

// TranslatePort translates text into Japanese. It never fails from the
// caller's perspective: on any provider failure the original text is
// returned, truncated to maxRunes when maxRunes > 0.
type TranslatePort interface {
	Translate(ctx context.Context, text string, maxRunes int) string
}
