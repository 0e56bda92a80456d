// Package selector turns catalog entities into picker rounds and maps the
// chosen labels back to the entities they stand for. Duplicate labels resolve
// to the first entity carrying them.
package selector

import (
	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/animeon-cli/animeon/preview"
	"github.com/animeon-cli/animeon/prompt"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type Selector struct {
	prompt  prompt.Prompter
	preview *preview.Generator
}

// New creates a selector. The preview generator may be nil to disable
// poster previews regardless of configuration.
func New(p prompt.Prompter, g *preview.Generator) *Selector {
	return &Selector{prompt: p, preview: g}
}

// Anime prompts for a single title, attaching poster previews when enabled.
func (s *Selector) Anime(animes []*catalog.Anime) mo.Option[*catalog.Anime] {
	opts := prompt.Options{Title: "Select anime: "}

	if s.preview != nil && viper.GetBool(key.PreviewEnabled) {
		entries := make(map[string]*catalog.Anime, len(animes))
		for _, anime := range animes {
			if _, taken := entries[anime.Title]; !taken {
				entries[anime.Title] = anime
			}
		}

		if artifact, err := s.preview.Generate(entries); err != nil {
			log.Errorf("generate previews: %s", err)
		} else {
			opts.Preview = preview.Command(artifact)
		}
	}

	return pickOne(s.prompt, animes, (*catalog.Anime).String, opts)
}

// Fandub prompts for a dub team.
func (s *Selector) Fandub(fandubs []catalog.Fandub) mo.Option[catalog.Fandub] {
	return pickOne(s.prompt, fandubs, catalog.Fandub.String, prompt.Options{Title: "Select dub: "})
}

// Player prompts for a hosting player within a dub.
func (s *Selector) Player(players []catalog.Player) mo.Option[catalog.Player] {
	return pickOne(s.prompt, players, catalog.Player.String, prompt.Options{Title: "Select player: "})
}

// Episodes prompts for one or more episodes, returned in catalog order.
func (s *Selector) Episodes(episodes []catalog.Episode) mo.Option[[]catalog.Episode] {
	labels := lo.Map(episodes, func(e catalog.Episode, _ int) string { return e.Label() })

	selected, ok := s.prompt.PickMany(labels, prompt.Options{Title: "Select episodes: "}).Get()
	if !ok {
		return mo.None[[]catalog.Episode]()
	}

	wanted := lo.SliceToMap(selected, func(label string) (string, struct{}) { return label, struct{}{} })
	picked := lo.Filter(episodes, func(e catalog.Episode, _ int) bool {
		_, want := wanted[e.Label()]
		return want
	})

	if len(picked) == 0 {
		return mo.None[[]catalog.Episode]()
	}

	return mo.Some(picked)
}

func pickOne[T any](p prompt.Prompter, items []T, label func(T) string, opts prompt.Options) mo.Option[T] {
	labels := lo.Map(items, func(item T, _ int) string { return label(item) })

	selected, ok := p.Pick(labels, opts).Get()
	if !ok {
		return mo.None[T]()
	}

	item, found := lo.Find(items, func(item T) bool { return label(item) == selected })
	if !found {
		log.Errorf("picker returned unknown label %q", selected)
		return mo.None[T]()
	}

	return mo.Some(item)
}
