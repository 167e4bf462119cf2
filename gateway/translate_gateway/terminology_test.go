package translate_gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostProcessTerminology(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "transformer artifact replaced",
			input: "新しい変圧器アーキテクチャが発表された。",
			want:  "新しいTransformerアーキテクチャが発表された。",
		},
		{
			name:  "longest match wins",
			input: "大きな言語モデルの微調整について。",
			want:  "大規模言語モデルのファインチューニングについて。",
		},
		{
			name:  "prompt engineering artifact",
			input: "迅速なエンジニアリングの手法。",
			want:  "プロンプトエンジニアリングの手法。",
		},
		{
			name:  "clean text untouched",
			input: "機械学習の最新研究。",
			want:  "機械学習の最新研究。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PostProcess(tt.input))
		})
	}
}

func TestPostProcessNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "space before fullwidth punctuation removed",
			input: "これはテストです 。次の文 、そして終わり 。",
			want:  "これはテストです。次の文、そして終わり。",
		},
		{
			name:  "doubled punctuation collapsed",
			input: "終わりました。。次へ、、進む。",
			want:  "終わりました。次へ、進む。",
		},
		{
			name:  "space after opening bracket removed",
			input: "「 引用文」と（ 補足）について。",
			want:  "「引用文」と（補足）について。",
		},
		{
			name:  "space runs collapsed and edges trimmed",
			input: "  AI  ニュース  ",
			want:  "AI ニュース",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PostProcess(tt.input))
		})
	}
}
