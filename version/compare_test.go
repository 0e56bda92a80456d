package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsNewer(t *testing.T) {
	Convey("IsNewer", t, func() {
		So(IsNewer("0.2.0", "0.1.0"), ShouldBeTrue)
		So(IsNewer("1.0.0", "0.9.9"), ShouldBeTrue)
		So(IsNewer("0.1.0", "0.1.0"), ShouldBeFalse)
		So(IsNewer("0.1.0", "0.2.0"), ShouldBeFalse)
		So(IsNewer("0.1.0.1", "0.1.0"), ShouldBeTrue)
		So(IsNewer("abc", "0.1.0"), ShouldBeFalse)
	})
}
