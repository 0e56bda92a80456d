// Package watch drives the interactive chain from a search query to playback:
// search, title selection, dub, player, episodes, stream resolution, handoff.
//
// A user walking away at any prompt, or a dead end in the catalog, is a normal
// outcome of the session. Run returns an error only when playback itself fails.
package watch

import (
	"fmt"
	"strings"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/icon"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/player"
	"github.com/animeon-cli/animeon/query"
	"github.com/animeon-cli/animeon/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Catalog is the slice of the catalog client the session consumes.
type Catalog interface {
	Search(query string) []catalog.SearchResult
	Anime(id int) mo.Option[*catalog.Anime]
	Fandubs(animeID int) []catalog.Fandub
	Episodes(playerID, fandubID int) []catalog.Episode
	VideoURL(episodeID int) mo.Option[string]
}

// Chooser is the slice of the selector the session consumes.
type Chooser interface {
	Anime(animes []*catalog.Anime) mo.Option[*catalog.Anime]
	Fandub(fandubs []catalog.Fandub) mo.Option[catalog.Fandub]
	Player(players []catalog.Player) mo.Option[catalog.Player]
	Episodes(episodes []catalog.Episode) mo.Option[[]catalog.Episode]
}

// Session owns one search-to-playback walk through the catalog.
type Session struct {
	catalog Catalog
	chooser Chooser
	player  player.Player
}

func New(c Catalog, ch Chooser, p player.Player) *Session {
	return &Session{catalog: c, chooser: ch, player: p}
}

// Run executes the full chain for the given query.
func (s *Session) Run(query string) error {
	anime, ok := s.pickAnime(query).Get()
	if !ok {
		return nil
	}

	fandub, ok := s.pickFandub(anime).Get()
	if !ok {
		return nil
	}

	hoster, ok := s.pickPlayer(fandub).Get()
	if !ok {
		return nil
	}

	episodes, ok := s.pickEpisodes(hoster, fandub).Get()
	if !ok {
		return nil
	}

	urls, episodes := s.resolve(episodes)
	if len(urls) == 0 {
		fmt.Printf("%s No playable streams resolved\n", icon.Get(icon.Fail))
		return nil
	}

	fmt.Printf("%s Playing %s\n", icon.Get(icon.Progress), util.Quantify(len(urls), "episode", "episodes"))

	// Playback problems end the session like any other dead end.
	if err := s.player.Play(urls, playbackTitle(anime, episodes)); err != nil {
		log.Errorf("playback failed: %s", err)
		fmt.Printf("%s %s\n", icon.Get(icon.Fail), err)
	}

	return nil
}

func (s *Session) pickAnime(q string) mo.Option[*catalog.Anime] {
	erase := util.PrintErasable(fmt.Sprintf("%s Searching for %q...", icon.Get(icon.Search), q))
	hits := s.catalog.Search(q)
	enriched := s.enrich(hits)
	erase()

	if len(enriched) == 0 {
		fmt.Printf("%s Nothing found for %q\n", icon.Get(icon.Fail), q)
		if suggestion, ok := query.Suggest(q).Get(); ok && suggestion != strings.ToLower(q) {
			fmt.Printf("%s Did you mean %q?\n", icon.Get(icon.Search), suggestion)
		}
		return mo.None[*catalog.Anime]()
	}

	if viper.GetBool(key.SearchRankResults) {
		rank(enriched, q)
	}

	picked := s.chooser.Anime(enriched)
	if picked.IsPresent() {
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("remember query %q: %s", q, err)
		}
	}

	return picked
}

// enrich upgrades bare search hits to full detail records,
// dropping hits whose details cannot be fetched.
func (s *Session) enrich(hits []catalog.SearchResult) []*catalog.Anime {
	enriched := make([]*catalog.Anime, 0, len(hits))
	for _, hit := range hits {
		anime, ok := s.catalog.Anime(hit.ID).Get()
		if !ok {
			log.Warnf("Dropping hit %q, details unavailable", hit.Title)
			continue
		}
		enriched = append(enriched, anime)
	}

	return enriched
}

func (s *Session) pickFandub(anime *catalog.Anime) mo.Option[catalog.Fandub] {
	fandubs := s.catalog.Fandubs(anime.ID)
	if len(fandubs) == 0 {
		fmt.Printf("%s No dubs available for %s\n", icon.Get(icon.Fail), anime.Title)
		return mo.None[catalog.Fandub]()
	}

	return s.chooser.Fandub(fandubs)
}

func (s *Session) pickPlayer(fandub catalog.Fandub) mo.Option[catalog.Player] {
	if len(fandub.Players) == 0 {
		fmt.Printf("%s Dub %s hosts no players\n", icon.Get(icon.Fail), fandub.Name)
		return mo.None[catalog.Player]()
	}

	return s.chooser.Player(fandub.Players)
}

func (s *Session) pickEpisodes(hoster catalog.Player, fandub catalog.Fandub) mo.Option[[]catalog.Episode] {
	episodes := s.catalog.Episodes(hoster.ID, fandub.ID)
	if len(episodes) == 0 {
		fmt.Printf("%s No episodes published yet\n", icon.Get(icon.Fail))
		return mo.None[[]catalog.Episode]()
	}

	return s.chooser.Episodes(episodes)
}

// resolve maps picked episodes to stream URLs, dropping episodes whose
// streams cannot be resolved and reporting each drop.
func (s *Session) resolve(episodes []catalog.Episode) ([]string, []catalog.Episode) {
	urls := make([]string, 0, len(episodes))
	resolved := make([]catalog.Episode, 0, len(episodes))

	for _, episode := range episodes {
		url, ok := s.catalog.VideoURL(episode.ID).Get()
		if !ok {
			fmt.Printf("%s %s has no playable stream, skipping\n", icon.Get(icon.Warning), episode.Label())
			continue
		}
		urls = append(urls, url)
		resolved = append(resolved, episode)
	}

	return urls, resolved
}

// rank orders candidates by title distance to the query, closest first.
func rank(animes []*catalog.Anime, query string) {
	query = strings.ToLower(query)
	slices.SortStableFunc(animes, func(a, b *catalog.Anime) int {
		return levenshtein.Distance(strings.ToLower(a.Title), query) -
			levenshtein.Distance(strings.ToLower(b.Title), query)
	})
}

func playbackTitle(anime *catalog.Anime, episodes []catalog.Episode) string {
	if len(episodes) == 1 {
		return fmt.Sprintf("%s - %s", anime.Title, episodes[0].Label())
	}

	return anime.Title
}
