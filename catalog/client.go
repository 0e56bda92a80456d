package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/animeon-cli/animeon/constant"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/network"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Client talks to the catalog service. Transport, HTTP and decode failures
// never surface as errors: they are logged and mapped to empty or absent
// results, so callers only ever see optional values.
type Client struct {
	http *http.Client
	base string
}

// New creates a catalog client configured from the global settings.
func New() *Client {
	return &Client{
		http: network.Client,
		base: strings.TrimRight(viper.GetString(key.APIBaseURL), "/"),
	}
}

// Search looks up titles matching the query.
// A query that is empty after normalization returns no results without a network call.
func (c *Client) Search(query string) []SearchResult {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		log.Warn("Search query is empty after normalization")
		return nil
	}

	log.Infof("Searching catalog for: %s", query)

	params := url.Values{"full": {"true"}}
	var response struct {
		Result []json.RawMessage `json:"result"`
	}
	if !c.getJSON("api/anime/search/"+normalized, params, &response) {
		return nil
	}

	var results []SearchResult
	for _, raw := range response.Result {
		var item struct {
			ID    *int    `json:"id"`
			Title *string `json:"titleUa"`
		}
		if err := json.Unmarshal(raw, &item); err != nil || item.ID == nil || item.Title == nil {
			log.Warnf("Dropping malformed search hit: %s", raw)
			continue
		}

		results = append(results, SearchResult{ID: *item.ID, Title: strings.TrimSpace(*item.Title)})
	}

	return results
}

// Anime resolves the full catalog record for a title.
func (c *Client) Anime(id int) mo.Option[*Anime] {
	var raw json.RawMessage
	if !c.getJSON(fmt.Sprintf("api/anime/%d", id), nil, &raw) {
		return mo.None[*Anime]()
	}

	anime, err := c.parseAnime(raw)
	if err != nil {
		log.Warnf("Failed to parse anime %d: %s", id, err)
		return mo.None[*Anime]()
	}

	return mo.Some(anime)
}

// Fandubs lists the dub groups (with their embedded player sources) available for an anime.
func (c *Client) Fandubs(animeID int) []Fandub {
	var items []json.RawMessage
	if !c.getJSON(fmt.Sprintf("api/player/fundubs/%d", animeID), nil, &items) {
		return nil
	}

	var fandubs []Fandub
	for _, raw := range items {
		fandub, err := parseFandub(raw)
		if err != nil {
			log.Warnf("Dropping malformed fandub: %s", err)
			continue
		}

		fandubs = append(fandubs, fandub)
	}

	return fandubs
}

// Episodes lists the episodes available from a player source under a dub.
func (c *Client) Episodes(playerID, fandubID int) []Episode {
	var items []json.RawMessage
	if !c.getJSON(fmt.Sprintf("api/player/episodes/%d/%d", playerID, fandubID), nil, &items) {
		return nil
	}

	var episodes []Episode
	for _, raw := range items {
		var item struct {
			ID      *int `json:"id"`
			Episode *int `json:"episode"`
		}
		if err := json.Unmarshal(raw, &item); err != nil || item.ID == nil || item.Episode == nil {
			log.Warnf("Dropping malformed episode: %s", raw)
			continue
		}

		episodes = append(episodes, Episode{ID: *item.ID, Number: *item.Episode})
	}

	return episodes
}

// VideoURL resolves the playable stream URL for an episode.
func (c *Client) VideoURL(episodeID int) mo.Option[string] {
	var response struct {
		VideoURL *string `json:"videoUrl"`
	}
	if !c.getJSON(fmt.Sprintf("api/player/episode/%d", episodeID), nil, &response) {
		return mo.None[string]()
	}

	if response.VideoURL == nil || *response.VideoURL == "" {
		log.Error("Episode response carries no video URL")
		return mo.None[string]()
	}

	return mo.Some(*response.VideoURL)
}

// Poster fetches raw image bytes for preview rendering.
func (c *Client) Poster(rawURL string) ([]byte, bool) {
	return c.get(rawURL, nil)
}

// posterURL builds the poster image URL from a raw filename,
// preferring the original over the preview variant.
func (c *Client) posterURL(original, preview string) string {
	filename := original
	if filename == "" {
		filename = preview
	}
	if filename == "" {
		log.Warn("Poster not found")
		return ""
	}

	return c.base + "/api/uploads/images/" + filename
}

func (c *Client) parseAnime(data []byte) (*Anime, error) {
	var raw struct {
		ID    *int    `json:"id"`
		Title *string `json:"titleUa"`
		Image struct {
			Original string `json:"original"`
			Preview  string `json:"preview"`
		} `json:"image"`
		MalScored       float64     `json:"malScored"`
		MalScoredBy     int         `json:"malScoredBy"`
		Type            string      `json:"type"`
		Episodes        int         `json:"episodes"`
		EpisodesAired   int         `json:"episodesAired"`
		Status          string      `json:"status"`
		Genres          []genreName `json:"genres"`
		Studio          flexString  `json:"studio"`
		ReleaseDate     flexInt     `json:"releaseDate"`
		EpisodeDuration flexString  `json:"episodeTime"`
		Producer        flexString  `json:"producer"`
		Description     string      `json:"description"`
		MalID           flexInt     `json:"malId"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.ID == nil || raw.Title == nil {
		return nil, fmt.Errorf("missing id or title")
	}

	genres := make([]string, 0, len(raw.Genres))
	for _, g := range raw.Genres {
		if g != "" {
			genres = append(genres, string(g))
		}
	}

	return &Anime{
		ID:              *raw.ID,
		Title:           strings.TrimSpace(*raw.Title),
		Poster:          c.posterURL(raw.Image.Original, raw.Image.Preview),
		Rating:          raw.MalScored,
		ScoredBy:        raw.MalScoredBy,
		Type:            raw.Type,
		Episodes:        raw.Episodes,
		EpisodesAired:   raw.EpisodesAired,
		Status:          raw.Status,
		Genres:          genres,
		Studio:          string(raw.Studio),
		ReleaseYear:     int(raw.ReleaseDate),
		EpisodeDuration: string(raw.EpisodeDuration),
		Producer:        string(raw.Producer),
		Description:     CleanDescription(raw.Description),
		MalID:           int(raw.MalID),
	}, nil
}

func parseFandub(data []byte) (Fandub, error) {
	var raw struct {
		Fundub struct {
			ID   *int    `json:"id"`
			Name *string `json:"name"`
		} `json:"fundub"`
		Player []json.RawMessage `json:"player"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return Fandub{}, err
	}
	if raw.Fundub.ID == nil || raw.Fundub.Name == nil {
		return Fandub{}, fmt.Errorf("missing fandub id or name")
	}

	fandub := Fandub{ID: *raw.Fundub.ID, Name: strings.TrimSpace(*raw.Fundub.Name)}
	for _, rawPlayer := range raw.Player {
		var player struct {
			ID   *int    `json:"id"`
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(rawPlayer, &player); err != nil || player.ID == nil || player.Name == nil {
			log.Warnf("Dropping malformed player under fandub %s", fandub.Name)
			continue
		}

		fandub.Players = append(fandub.Players, Player{ID: *player.ID, Name: *player.Name})
	}

	return fandub, nil
}

// get issues a GET request and returns the raw body.
// Every failure class (connect, timeout, HTTP status, read) is absorbed here.
func (c *Client) get(rawURL string, params url.Values) ([]byte, bool) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(key.APITimeout))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		log.Errorf("Failed to build request for %s: %s", rawURL, err)
		return nil, false
	}

	req.Header.Set("Referer", c.base)
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Debugf("GET %s", rawURL)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("Request to %s failed: %s", rawURL, err)
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("Catalog returned status %d for %s", resp.StatusCode, rawURL)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Failed to read response from %s: %s", rawURL, err)
		return nil, false
	}

	return body, true
}

// getJSON issues a GET against an API endpoint and decodes the JSON body into dst.
func (c *Client) getJSON(endpoint string, params url.Values, dst any) bool {
	body, ok := c.get(c.base+"/"+endpoint, params)
	if !ok {
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		log.Errorf("Failed to decode response from %s: %s", endpoint, err)
		return false
	}

	return true
}
