// Package classifier assigns topic tags to news items by keyword matching.
// It is a pure lookup-table function with no I/O.
package classifier

import "strings"

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "一般"

// rule maps a keyword list to one topic tag. A tag is added when any keyword
// appears as a substring of the lower-cased title+body.
type rule struct {
	tag      string
	keywords []string
}

// The rule table is immutable; order only affects tag order in the result.
var rules = []rule{
	{
		tag: "機械学習",
		keywords: []string{
			"machine learning", "deep learning", "neural network",
			"fine-tuning", "training data", "機械学習", "深層学習",
			"ニューラルネットワーク", "学習モデル",
		},
	},
	{
		tag: "生成AI",
		keywords: []string{
			"generative", "gpt", "chatgpt", "claude", "gemini", "llm",
			"large language model", "diffusion", "image generation",
			"生成ai", "大規模言語モデル", "画像生成",
		},
	},
	{
		tag: "自然言語処理",
		keywords: []string{
			"nlp", "natural language", "translation", "text analysis",
			"自然言語処理", "翻訳", "テキスト解析",
		},
	},
	{
		tag: "コンピュータビジョン",
		keywords: []string{
			"computer vision", "image recognition", "object detection",
			"画像認識", "物体検出", "コンピュータビジョン",
		},
	},
	{
		tag: "強化学習",
		keywords: []string{
			"reinforcement learning", "reward model", "強化学習",
		},
	},
	{
		tag: "ロボティクス",
		keywords: []string{
			"robot", "autonomous", "self-driving", "ロボット", "自動運転",
		},
	},
	{
		tag: "ビジネス",
		keywords: []string{
			"funding", "startup", "acquisition", "enterprise", "revenue",
			"investment", "資金調達", "スタートアップ", "買収", "導入事例",
		},
	},
	{
		tag: "研究",
		keywords: []string{
			"research", "paper", "study", "benchmark", "arxiv",
			"研究", "論文",
		},
	},
	{
		tag: "規制・倫理",
		keywords: []string{
			"regulation", "policy", "ethics", "copyright", "privacy",
			"規制", "倫理", "著作権", "プライバシー",
		},
	},
}

// Classify runs the rule table against title and body and returns the matched
// tags. If nothing matches, the single default tag is returned.
func Classify(title, body string) []string {
	haystack := strings.ToLower(title + " " + body)

	var tags []string
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(haystack, kw) {
				tags = append(tags, r.tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{DefaultCategory}
	}
	return tags
}

// MergeCategories unions matched tags with the feed's static defaults,
// de-duplicated. Order is not significant.
func MergeCategories(matched, defaults []string) []string {
	seen := make(map[string]struct{}, len(matched)+len(defaults))
	merged := make([]string, 0, len(matched)+len(defaults))
	for _, t := range append(append([]string{}, matched...), defaults...) {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
