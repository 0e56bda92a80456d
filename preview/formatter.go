package preview

import (
	"fmt"
	"strings"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/icon"
	"github.com/muesli/reflow/wordwrap"
)

var typeNames = map[string]string{
	"tv":      "TV Series",
	"movie":   "Movie",
	"ova":     "OVA",
	"ona":     "ONA",
	"special": "Special",
}

var statusNames = map[string]string{
	"ongoing":  "Ongoing",
	"released": "Released",
	"anons":    "Announced",
}

// FormatDetails lays out the labeled detail block of an anime preview,
// wrapping the description to the given width.
func FormatDetails(anime *catalog.Anime, width int) string {
	var b strings.Builder

	line := func(i icon.Icon, label, value string) {
		if value == "" {
			value = "Unknown"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", icon.Get(i), label, value)
	}

	b.WriteString(anime.Title + "\n\n")

	rating := "None"
	if anime.Rating > 0 {
		rating = fmt.Sprintf("%.2f", anime.Rating)
		if anime.ScoredBy > 0 {
			rating += fmt.Sprintf(" (%d votes)", anime.ScoredBy)
		}
	}
	line(icon.Rating, "Rating", rating)
	line(icon.Type, "Type", mapName(typeNames, anime.Type))

	episodes := ""
	if anime.Episodes > 0 {
		episodes = fmt.Sprintf("%d", anime.Episodes)
		if anime.EpisodesAired > 0 && anime.EpisodesAired != anime.Episodes {
			episodes = fmt.Sprintf("%d/%d", anime.EpisodesAired, anime.Episodes)
		}
	}
	line(icon.Episodes, "Episodes", episodes)
	line(icon.Status, "Status", mapName(statusNames, anime.Status))
	line(icon.Genres, "Genres", strings.Join(anime.Genres, ", "))
	line(icon.Studio, "Studio", anime.Studio)

	year := ""
	if anime.ReleaseYear > 0 {
		year = fmt.Sprintf("%d", anime.ReleaseYear)
	}
	line(icon.Year, "Year", year)

	line(icon.Duration, "Duration", anime.EpisodeDuration)
	line(icon.Producer, "Producer", anime.Producer)

	description := anime.Description
	if description == "" {
		description = "None"
	}
	fmt.Fprintf(&b, "\n%s Description:\n%s\n", icon.Get(icon.Description), wordwrap.String(description, width))

	return b.String()
}

// mapName resolves a closed service vocabulary code to its display name.
// Codes outside the vocabulary are as good as absent.
func mapName(names map[string]string, raw string) string {
	if pretty, ok := names[strings.ToLower(raw)]; ok {
		return pretty
	}

	return ""
}
