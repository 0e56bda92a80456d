package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCleanDescription(t *testing.T) {
	Convey("CleanDescription", t, func() {
		Convey("Should strip markdown links and unwrap bare URLs", func() {
			So(CleanDescription("[link](http://x) <http://y>"), ShouldEqual, "link http://y")
		})

		Convey("Should trim surrounding whitespace", func() {
			So(CleanDescription("  plot  "), ShouldEqual, "plot")
		})

		Convey("Should leave plain text untouched", func() {
			So(CleanDescription("a story about [brackets] and (parens)"), ShouldEqual, "a story about [brackets] and (parens)")
		})
	})
}

func TestEpisodeLabel(t *testing.T) {
	Convey("Episode.Label", t, func() {
		So(Episode{ID: 100, Number: 1}.Label(), ShouldEqual, "Episode 1")
		So(Episode{ID: 101, Number: 220}.Label(), ShouldEqual, "Episode 220")
	})
}
