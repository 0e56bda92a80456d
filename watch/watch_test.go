package watch

import (
	"testing"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeCatalog struct {
	hits     []catalog.SearchResult
	animes   map[int]*catalog.Anime
	fandubs  []catalog.Fandub
	episodes []catalog.Episode
	urls     map[int]string
}

func (f *fakeCatalog) Search(string) []catalog.SearchResult { return f.hits }

func (f *fakeCatalog) Anime(id int) mo.Option[*catalog.Anime] {
	if anime, ok := f.animes[id]; ok {
		return mo.Some(anime)
	}
	return mo.None[*catalog.Anime]()
}

func (f *fakeCatalog) Fandubs(int) []catalog.Fandub { return f.fandubs }

func (f *fakeCatalog) Episodes(int, int) []catalog.Episode { return f.episodes }

func (f *fakeCatalog) VideoURL(episodeID int) mo.Option[string] {
	if url, ok := f.urls[episodeID]; ok {
		return mo.Some(url)
	}
	return mo.None[string]()
}

type fakeChooser struct {
	anime    mo.Option[*catalog.Anime]
	fandub   mo.Option[catalog.Fandub]
	player   mo.Option[catalog.Player]
	episodes mo.Option[[]catalog.Episode]

	animeCandidates []*catalog.Anime
	episodesCalls   int
}

func (f *fakeChooser) Anime(animes []*catalog.Anime) mo.Option[*catalog.Anime] {
	f.animeCandidates = animes
	if f.anime.IsPresent() {
		return f.anime
	}
	if len(animes) > 0 {
		return mo.Some(animes[0])
	}
	return mo.None[*catalog.Anime]()
}

func (f *fakeChooser) Fandub([]catalog.Fandub) mo.Option[catalog.Fandub] { return f.fandub }

func (f *fakeChooser) Player([]catalog.Player) mo.Option[catalog.Player] { return f.player }

func (f *fakeChooser) Episodes([]catalog.Episode) mo.Option[[]catalog.Episode] {
	f.episodesCalls++
	return f.episodes
}

type fakePlayer struct {
	urls   []string
	title  string
	played int
}

func (f *fakePlayer) Play(urls []string, title string) error {
	f.urls = urls
	f.title = title
	f.played++
	return nil
}

func happyCatalog() *fakeCatalog {
	return &fakeCatalog{
		hits: []catalog.SearchResult{{ID: 1, Title: "Naruto"}},
		animes: map[int]*catalog.Anime{
			1: {ID: 1, Title: "Naruto"},
		},
		fandubs: []catalog.Fandub{
			{ID: 5, Name: "Original", Players: []catalog.Player{{ID: 9, Name: "Ashdi"}}},
		},
		episodes: []catalog.Episode{
			{ID: 100, Number: 1},
			{ID: 101, Number: 2},
			{ID: 102, Number: 3},
		},
		urls: map[int]string{
			100: "http://cdn/1.mp4",
			101: "http://cdn/2.mp4",
			102: "http://cdn/3.mp4",
		},
	}
}

func happyChooser(c *fakeCatalog) *fakeChooser {
	return &fakeChooser{
		fandub:   mo.Some(c.fandubs[0]),
		player:   mo.Some(c.fandubs[0].Players[0]),
		episodes: mo.Some(c.episodes),
	}
}

func TestRun(t *testing.T) {
	Convey("Session.Run", t, func() {
		viper.Set(key.SearchRankResults, false)

		c := happyCatalog()
		ch := happyChooser(c)
		p := &fakePlayer{}
		session := New(c, ch, p)

		Convey("Should walk the full chain and play every resolved episode", func() {
			So(session.Run("naruto"), ShouldBeNil)
			So(p.played, ShouldEqual, 1)
			So(p.urls, ShouldResemble, []string{"http://cdn/1.mp4", "http://cdn/2.mp4", "http://cdn/3.mp4"})
			So(p.title, ShouldEqual, "Naruto")
		})

		Convey("Should title a single episode with its number", func() {
			ch.episodes = mo.Some(c.episodes[:1])
			So(session.Run("naruto"), ShouldBeNil)
			So(p.title, ShouldEqual, "Naruto - Episode 1")
		})

		Convey("Should skip episodes whose stream cannot be resolved", func() {
			delete(c.urls, 101)
			So(session.Run("naruto"), ShouldBeNil)
			So(p.urls, ShouldResemble, []string{"http://cdn/1.mp4", "http://cdn/3.mp4"})
		})

		Convey("Should abort without error when nothing resolves", func() {
			c.urls = map[int]string{}
			So(session.Run("naruto"), ShouldBeNil)
			So(p.played, ShouldEqual, 0)
		})

		Convey("Should drop hits whose details are unavailable", func() {
			c.hits = append(c.hits, catalog.SearchResult{ID: 2, Title: "Ghost"})
			So(session.Run("naruto"), ShouldBeNil)
			So(ch.animeCandidates, ShouldHaveLength, 1)
		})

		Convey("Should abort cleanly at every cancellation point", func() {
			Convey("empty search", func() {
				c.hits = nil
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})

			Convey("no dubs", func() {
				c.fandubs = nil
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})

			Convey("dub cancelled", func() {
				ch.fandub = mo.None[catalog.Fandub]()
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})

			Convey("dub with no players", func() {
				ch.fandub = mo.Some(catalog.Fandub{ID: 6, Name: "Silent"})
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})

			Convey("player cancelled", func() {
				ch.player = mo.None[catalog.Player]()
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})

			Convey("no episodes", func() {
				c.episodes = nil
				So(session.Run("naruto"), ShouldBeNil)
				So(ch.episodesCalls, ShouldEqual, 0)
				So(p.played, ShouldEqual, 0)
			})

			Convey("episodes cancelled", func() {
				ch.episodes = mo.None[[]catalog.Episode]()
				So(session.Run("naruto"), ShouldBeNil)
				So(p.played, ShouldEqual, 0)
			})
		})
	})
}

func TestRank(t *testing.T) {
	Convey("rank", t, func() {
		animes := []*catalog.Anime{
			{ID: 1, Title: "Boruto: Naruto Next Generations"},
			{ID: 2, Title: "Naruto"},
			{ID: 3, Title: "Naruto Shippuden"},
		}

		rank(animes, "naruto")

		So(animes[0].Title, ShouldEqual, "Naruto")
		So(animes[1].Title, ShouldEqual, "Naruto Shippuden")
	})
}
