// Package domain holds the core entities of the news aggregation service.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Source languages of registry feeds.
const (
	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// NewsItem is one aggregated article. For translated items the Original*
// fields preserve the source text; for Japanese items they stay empty.
type NewsItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Link           string    `json:"link"`
	Content        string    `json:"content,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
	SourceName     string    `json:"sourceName"`
	SourceLanguage string    `json:"sourceLanguage"`
	Categories     []string  `json:"categories"`

	OriginalTitle   string `json:"originalTitle,omitempty"`
	OriginalContent string `json:"originalContent,omitempty"`
	OriginalSummary string `json:"originalSummary,omitempty"`
}

// DeriveItemID produces a stable article identifier. The feed GUID is
// preferred, then the link; items carrying neither fall back to a composite
// of source, title and publish time. Re-fetching the same article always
// yields the same ID, which the posted-id dedup depends on.
func DeriveItemID(guid, link, sourceName, title string, published time.Time) string {
	switch {
	case guid != "":
		return hashID("guid:" + guid)
	case link != "":
		return hashID("link:" + link)
	default:
		return hashID("item:" + sourceName + "|" + title + "|" + strconv.FormatInt(published.Unix(), 10))
	}
}

func hashID(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:8])
}

// PostResult is the per-article outcome of one social posting run.
type PostResult struct {
	ItemID string `json:"itemId"`
	Title  string `json:"title"`
	Posted bool   `json:"posted"`
	PostID string `json:"postId,omitempty"`
	Error  string `json:"error,omitempty"`
}
