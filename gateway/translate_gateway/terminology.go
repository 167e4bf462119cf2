package translate_gateway

import (
	"regexp"
	"sort"
	"strings"
)

// terminology maps machine-translation artifacts to the canonical Japanese
// term. Substitution is longest-match-first so 「大きな言語モデル」 wins over
// 「言語モデル」.
var terminology = map[string]string{
	"変圧器":           "Transformer",
	"トランスフォーマーモデル": "Transformerモデル",
	"大きな言語モデル":      "大規模言語モデル",
	"大型言語モデル":       "大規模言語モデル",
	"注意機構":          "アテンション機構",
	"注意メカニズム":       "アテンション機構",
	"微調整":           "ファインチューニング",
	"埋め込み":          "エンベディング",
	"拡散モデル":         "Diffusionモデル",
	"迅速なエンジニアリング":   "プロンプトエンジニアリング",
	"オープンソースする":     "オープンソース化する",
	"人工知能知能":        "人工知能",
	"機械学習学習":        "機械学習",
}

var orderedArtifacts = sortedArtifacts()

func sortedArtifacts() []string {
	keys := make([]string, 0, len(terminology))
	for k := range terminology {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Normalization passes for spacing and punctuation idiosyncrasies of the
// fallback translation source.
var normalizePasses = []struct {
	re   *regexp.Regexp
	repl string
}{
	// Space wedged before fullwidth punctuation.
	{regexp.MustCompile(`\s+([。、！？」』])`), "$1"},
	// Space wedged after opening brackets.
	{regexp.MustCompile(`([「『（])\s+`), "$1"},
	// Fullwidth punctuation doubled up by segment stitching.
	{regexp.MustCompile(`。{2,}`), "。"},
	{regexp.MustCompile(`、{2,}`), "、"},
	// ASCII space runs inside Japanese text collapse to one.
	{regexp.MustCompile(` {2,}`), " "},
}

// PostProcess applies the terminology substitutions and the normalization
// regex passes to machine-translated text.
func PostProcess(text string) string {
	for _, artifact := range orderedArtifacts {
		text = strings.ReplaceAll(text, artifact, terminology[artifact])
	}
	for _, pass := range normalizePasses {
		text = pass.re.ReplaceAllString(text, pass.repl)
	}
	return strings.TrimSpace(text)
}
