package query

import (
	"testing"

	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Query history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)

		So(Remember("naruto", 1), ShouldBeNil)
		So(Remember("bleach", 10), ShouldBeNil)

		Convey("Should suggest matches sorted by rank", func() {
			suggestions := SuggestMany("ble")
			So(len(suggestions), ShouldBeGreaterThanOrEqualTo, 1)
			So(suggestions[0], ShouldEqual, "bleach")
		})

		Convey("Should surface the best match through Suggest", func() {
			suggestion, ok := Suggest("blech").Get()
			So(ok, ShouldBeTrue)
			So(suggestion, ShouldEqual, "bleach")
		})

		Convey("Should stay silent when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("ble"), ShouldBeEmpty)
		})

		Convey("Should sanitize input before matching", func() {
			So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
		})
	})
}
