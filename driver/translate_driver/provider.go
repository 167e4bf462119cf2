// Package translate_driver talks to external machine-translation services.
package translate_driver

import "context"

// Provider is one translation backend. The gateway tries providers in order
// and falls back to the original text when all of them fail.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
