package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeQuery(t *testing.T) {
	Convey("NormalizeQuery", t, func() {
		Convey("Should apply the full substitution table", func() {
			So(NormalizeQuery(`one/two\three?#&= four`), ShouldEqual, "onetwo%5Cthree%3F%23%26%3D%20four")
		})

		Convey("Should trim surrounding whitespace", func() {
			So(NormalizeQuery("  naruto  "), ShouldEqual, "naruto")
		})

		Convey("Should remove slashes instead of encoding them", func() {
			So(NormalizeQuery("fate/stay night"), ShouldEqual, "fatestay%20night")
		})

		Convey("Should yield empty for whitespace-only input", func() {
			So(NormalizeQuery("   "), ShouldBeEmpty)
		})
	})
}
