package translate_usecase

import (
	"context"
	"strings"

	"ainews/port/translate_port"
	"ainews/utils/errors"
)

// TranslationResult pairs the input text with its translation.
type TranslationResult struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

type TranslateUsecase struct {
	translator translate_port.TranslatePort
}

func NewTranslateUsecase(translator translate_port.TranslatePort) *TranslateUsecase {
	return &TranslateUsecase{translator: translator}
}

// Execute translates text for the ad-hoc HTTP endpoint. Empty input is a
// validation failure; translation failures degrade to the original text
// inside the gateway and never reach here as errors.
func (u *TranslateUsecase) Execute(ctx context.Context, text string, maxRunes int) (*TranslationResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.ValidationError("text is required", nil)
	}

	return &TranslationResult{
		Original:   text,
		Translated: u.translator.Translate(ctx, text, maxRunes),
	}, nil
}
