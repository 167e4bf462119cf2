// Package translate_gateway implements the translator contract: providers
// are tried in order, output is post-processed, and failure always degrades
// to the original text.
package translate_gateway

import (
	"context"
	"strings"

	"ainews/driver/translate_driver"
	"ainews/utils/logger"
	"ainews/utils/textutil"
)

const (
	sourceLang = "en"
	targetLang = "ja"
)

// TranslateGateway implements translate_port.TranslatePort.
type TranslateGateway struct {
	providers []translate_driver.Provider
}

// NewTranslateGateway takes providers in priority order.
func NewTranslateGateway(providers ...translate_driver.Provider) *TranslateGateway {
	return &TranslateGateway{providers: providers}
}

// Translate converts text to Japanese. Any provider failure falls through to
// the next provider; when every provider fails the original text is returned,
// truncated to maxRunes when given. Callers never see an error.
func (g *TranslateGateway) Translate(ctx context.Context, text string, maxRunes int) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}

	for _, provider := range g.providers {
		translated, err := provider.Translate(ctx, trimmed, sourceLang, targetLang)
		if err != nil {
			logger.Logger.Warn("translation provider failed, trying next",
				"provider", provider.Name(),
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(translated) == "" {
			logger.Logger.Warn("translation provider returned empty text",
				"provider", provider.Name(),
			)
			continue
		}

		result := PostProcess(translated)
		if maxRunes > 0 {
			result = textutil.TruncateAtBreak(result, maxRunes)
		}
		return result
	}

	// Degraded path: untranslated original, still bounded.
	if maxRunes > 0 {
		return textutil.TruncateAtBreak(trimmed, maxRunes)
	}
	return trimmed
}
