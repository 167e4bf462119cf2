package post_news_usecase

import (
	"math/rand"
	"strings"

	"ainews/domain"
	"ainews/utils/textutil"
)

// Format selects the tweet text variant.
type Format string

const (
	FormatSimple   Format = "simple"
	FormatEnhanced Format = "enhanced"
	FormatRandom   Format = "random"
)

const (
	// Platform hard budget in weighted characters.
	tweetBudget = 280
	// Every URL counts as a fixed-width t.co link.
	urlWeight = 23

	baseHashtag = "#AIニュース"
)

// FormatTweet renders one item as platform-constrained text. The title is
// truncated with an ellipsis so hashtags, URL and separators always fit the
// budget.
func FormatTweet(item domain.NewsItem, format Format) string {
	if format == FormatRandom {
		if rand.Intn(2) == 0 {
			format = FormatSimple
		} else {
			format = FormatEnhanced
		}
	}

	switch format {
	case FormatEnhanced:
		return formatEnhanced(item)
	default:
		return formatSimple(item)
	}
}

func formatSimple(item domain.NewsItem) string {
	hashtags := baseHashtag
	// title + "\n" + link + "\n" + hashtags
	overhead := urlWeight + 2 + textutil.RuneLen(hashtags)
	title := textutil.TruncateAtBreak(item.Title, tweetBudget-overhead)
	return title + "\n" + item.Link + "\n" + hashtags
}

func formatEnhanced(item domain.NewsItem) string {
	hashtags := buildHashtags(item.Categories)
	// "📰 " + title + "\n\n" + summary + "\n" + link + "\n" + hashtags
	fixed := 2 + 2 + 1 + urlWeight + 1 + textutil.RuneLen(hashtags)

	title := textutil.TruncateAtBreak(item.Title, 90)
	remaining := tweetBudget - fixed - textutil.RuneLen(title)

	summary := ""
	if remaining > 20 {
		summary = textutil.TruncateAtBreak(item.Summary, remaining)
	}

	var sb strings.Builder
	sb.WriteString("📰 ")
	sb.WriteString(title)
	if summary != "" {
		sb.WriteString("\n\n")
		sb.WriteString(summary)
	}
	sb.WriteString("\n")
	sb.WriteString(item.Link)
	sb.WriteString("\n")
	sb.WriteString(hashtags)
	return sb.String()
}

// buildHashtags turns up to two categories into hashtags after the base tag.
// The default catch-all category carries no signal and is skipped.
func buildHashtags(categories []string) string {
	tags := []string{baseHashtag}
	for _, c := range categories {
		if c == "" || c == "一般" {
			continue
		}
		tags = append(tags, "#"+strings.ReplaceAll(c, " ", ""))
		if len(tags) == 3 {
			break
		}
	}
	return strings.Join(tags, " ")
}
