package util

import (
	"testing"

	"github.com/animeon-cli/animeon/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(2, "episode", "episodes"), ShouldEqual, "2 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should remove a file", func() {
			So(filesystem.API().WriteFile("/tmp-file", []byte("x"), 0644), ShouldBeNil)
			So(Delete("/tmp-file"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/tmp-file")
			So(exists, ShouldBeFalse)
		})

		Convey("Should remove a directory recursively", func() {
			So(filesystem.API().MkdirAll("/dir/sub", 0755), ShouldBeNil)
			So(Delete("/dir"), ShouldBeNil)
			exists, _ := filesystem.API().Exists("/dir")
			So(exists, ShouldBeFalse)
		})

		Convey("Should report missing paths", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
