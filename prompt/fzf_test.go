package prompt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFzfBuildArgs(t *testing.T) {
	Convey("Fzf.buildArgs", t, func() {
		fzf := &Fzf{extraArgs: []string{"--height=50%"}}

		Convey("Should include the prompt and preview when given", func() {
			args := fzf.buildArgs(Options{Title: "Search: ", Preview: "jq . {}"}, false)
			So(args, ShouldContain, "--prompt")
			So(args, ShouldContain, "Search: ")
			So(args, ShouldContain, "--preview")
			So(args, ShouldContain, "jq . {}")
			So(args, ShouldNotContain, "--multi")
		})

		Convey("Should request multi selection mode", func() {
			So(fzf.buildArgs(Options{}, true), ShouldContain, "--multi")
		})

		Convey("Should append configured extra arguments last", func() {
			args := fzf.buildArgs(Options{}, false)
			So(args[len(args)-1], ShouldEqual, "--height=50%")
		})
	})
}
