package domain

// FeedDescriptor is the static configuration of one RSS source. Descriptors
// are never mutated at runtime.
type FeedDescriptor struct {
	URL               string   `json:"url"`
	Name              string   `json:"name"`
	Language          string   `json:"language"`
	DefaultCategories []string `json:"defaultCategories"`
	// RequireKeywords marks feeds whose stream is broader than AI news;
	// items from these feeds must match the AI keyword list to be accepted.
	RequireKeywords bool `json:"requireKeywords"`
}

// DefaultFeedRegistry returns the fixed list of feeds the service polls.
func DefaultFeedRegistry() []FeedDescriptor {
	return []FeedDescriptor{
		{
			URL:               "https://openai.com/blog/rss.xml",
			Name:              "OpenAI Blog",
			Language:          LanguageEnglish,
			DefaultCategories: []string{"生成AI"},
		},
		{
			URL:               "https://blog.google/technology/ai/rss/",
			Name:              "Google AI Blog",
			Language:          LanguageEnglish,
			DefaultCategories: []string{"研究"},
		},
		{
			URL:               "https://www.technologyreview.com/topic/artificial-intelligence/feed",
			Name:              "MIT Technology Review AI",
			Language:          LanguageEnglish,
			DefaultCategories: []string{"研究"},
		},
		{
			URL:               "https://huggingface.co/blog/feed.xml",
			Name:              "Hugging Face Blog",
			Language:          LanguageEnglish,
			DefaultCategories: []string{"機械学習"},
		},
		{
			URL:               "https://venturebeat.com/category/ai/feed/",
			Name:              "VentureBeat AI",
			Language:          LanguageEnglish,
			DefaultCategories: []string{"ビジネス"},
			RequireKeywords:   true,
		},
		{
			URL:               "https://rss.itmedia.co.jp/rss/2.0/aiplus.xml",
			Name:              "ITmedia AI+",
			Language:          LanguageJapanese,
			DefaultCategories: []string{"一般"},
		},
		{
			URL:               "https://ai-scholar.tech/feed",
			Name:              "AI-SCHOLAR",
			Language:          LanguageJapanese,
			DefaultCategories: []string{"研究"},
		},
		{
			URL:               "https://ledge.ai/feed/",
			Name:              "Ledge.ai",
			Language:          LanguageJapanese,
			DefaultCategories: []string{"ビジネス"},
			RequireKeywords:   true,
		},
	}
}

// AIKeywords is the inclusion word list applied to feeds flagged
// RequireKeywords. Matching is case-insensitive substring.
var AIKeywords = []string{
	"artificial intelligence", "machine learning", "deep learning",
	"neural", "llm", "gpt", "chatgpt", "gemini", "claude", "generative",
	"openai", "anthropic", "ai model", "ai agent",
	"人工知能", "機械学習", "深層学習", "生成ai", "大規模言語モデル",
}
