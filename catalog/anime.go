// Package catalog implements the client and domain records for the AnimeOn catalog service.
package catalog

import (
	"regexp"
	"strings"
)

// Anime is the full catalog record for a single title.
// Zero values stand for fields the service did not provide.
type Anime struct {
	ID              int
	Title           string
	Poster          string
	Rating          float64
	ScoredBy        int
	Type            string
	Episodes        int
	EpisodesAired   int
	Status          string
	Genres          []string
	Studio          string
	ReleaseYear     int
	EpisodeDuration string
	Producer        string
	Description     string
	MalID           int
}

func (a *Anime) String() string {
	return a.Title
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	angleURLRe     = regexp.MustCompile(`<(http[s]?://\S+)>`)
)

// CleanDescription strips Markdown link syntax from a description:
// [text](url) becomes text and <url> becomes url.
func CleanDescription(text string) string {
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = angleURLRe.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
