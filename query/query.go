// Package query keeps a persistent history of search queries and serves
// "did you mean" suggestions from it.
package query

import (
	"strings"

	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var store = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records a search query, bumping its rank when already known.
func Remember(q string, weight int) error {
	q = sanitize(q)
	known, expired, err := store.Get()
	if expired || err != nil || known == nil {
		known = make(map[string]*record)
	}

	if r, ok := known[q]; ok {
		r.Rank += weight
	} else {
		known[q] = &record{Rank: weight, Query: q}
	}

	return store.Set(known)
}

// Suggest returns the best historical match for a partial or misspelled query.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}

	return mo.Some(suggestions[0])
}

// SuggestMany returns historical queries fuzzy-matching the input,
// most popular first. Disabled via search.show_query_suggestions.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = sanitize(q)
	known, expired, err := store.Get()
	if err != nil || expired || known == nil {
		return nil
	}

	var matched []*record
	for _, r := range known {
		if fuzzy.Match(q, r.Query) {
			matched = append(matched, r)
		}
	}

	slices.SortFunc(matched, func(a, b *record) int {
		return b.Rank - a.Rank
	})

	return lo.Map(matched, func(r *record, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
