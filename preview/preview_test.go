package preview

import (
	"strings"
	"testing"

	"github.com/animeon-cli/animeon/catalog"
	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type stubRenderer struct {
	calls  int
	output string
	fail   bool
}

func (r *stubRenderer) Render(image []byte, width, height int) (string, error) {
	r.calls++
	if r.fail {
		return "", assertErr
	}
	return r.output, nil
}

var assertErr = errStub("render failed")

type errStub string

func (e errStub) Error() string { return string(e) }

func TestGenerator(t *testing.T) {
	Convey("Generator", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.PreviewWidth, 40)
		viper.Set(key.PreviewHeight, 20)

		renderer := &stubRenderer{output: "<poster>"}
		fetched := make(map[string]int)
		fetch := func(url string) ([]byte, bool) {
			fetched[url]++
			return []byte{0xFF}, true
		}

		Convey("Should never fetch or render without a poster URL", func() {
			g := NewGenerator(fetch, renderer)
			artifact, err := g.Generate(map[string]*catalog.Anime{
				"Naruto": {ID: 1, Title: "Naruto"},
			})

			So(err, ShouldBeNil)
			So(fetched, ShouldBeEmpty)
			So(renderer.calls, ShouldEqual, 0)

			content, err := afero.ReadFile(filesystem.API(), artifact)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "Naruto")
		})

		Convey("Should prepend the rendered poster to the details", func() {
			g := NewGenerator(fetch, renderer)
			artifact, err := g.Generate(map[string]*catalog.Anime{
				"Naruto": {ID: 1, Title: "Naruto", Poster: "http://x/poster.jpg"},
			})

			So(err, ShouldBeNil)
			So(fetched["http://x/poster.jpg"], ShouldEqual, 1)
			So(renderer.calls, ShouldEqual, 1)

			content, err := afero.ReadFile(filesystem.API(), artifact)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "<poster>")
			So(string(content), ShouldNotContainSubstring, `\u003c`)
		})

		Convey("Should degrade to text-only when the poster fetch fails", func() {
			g := NewGenerator(func(string) ([]byte, bool) { return nil, false }, renderer)
			artifact, err := g.Generate(map[string]*catalog.Anime{
				"Naruto": {ID: 1, Title: "Naruto", Poster: "http://x/poster.jpg"},
			})

			So(err, ShouldBeNil)
			So(renderer.calls, ShouldEqual, 0)

			content, err := afero.ReadFile(filesystem.API(), artifact)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "Naruto")
		})

		Convey("Should degrade to text-only when rendering fails", func() {
			g := NewGenerator(fetch, &stubRenderer{fail: true})
			artifact, err := g.Generate(map[string]*catalog.Anime{
				"Naruto": {ID: 1, Title: "Naruto", Poster: "http://x/poster.jpg"},
			})

			So(err, ShouldBeNil)

			content, err := afero.ReadFile(filesystem.API(), artifact)
			So(err, ShouldBeNil)
			So(string(content), ShouldContainSubstring, "Naruto")
			So(string(content), ShouldNotContainSubstring, "<poster>")
		})
	})
}

func TestCommand(t *testing.T) {
	Convey("Command", t, func() {
		cmd := Command("/tmp/preview-1.json")
		So(cmd, ShouldContainSubstring, "jq -r")
		So(cmd, ShouldContainSubstring, "{}")
		So(cmd, ShouldContainSubstring, `"/tmp/preview-1.json"`)
	})
}

func TestFormatDetails(t *testing.T) {
	Convey("FormatDetails", t, func() {
		viper.Set(key.IconsVariant, "plain")

		Convey("Should humanize known type and status codes", func() {
			out := FormatDetails(&catalog.Anime{Title: "X", Type: "tv", Status: "anons"}, 40)
			So(out, ShouldContainSubstring, "Type: TV Series")
			So(out, ShouldContainSubstring, "Status: Announced")
		})

		Convey("Should fall back to Unknown for codes outside the vocabulary", func() {
			out := FormatDetails(&catalog.Anime{Title: "X", Type: "music", Status: "paused"}, 40)
			So(out, ShouldContainSubstring, "Type: Unknown")
			So(out, ShouldContainSubstring, "Status: Unknown")
		})

		Convey("Should fall back to Unknown for absent fields", func() {
			out := FormatDetails(&catalog.Anime{Title: "X"}, 40)
			So(out, ShouldContainSubstring, "Rating: None")
			So(out, ShouldContainSubstring, "Studio: Unknown")
		})

		Convey("Should show aired progress for ongoing shows", func() {
			out := FormatDetails(&catalog.Anime{Title: "X", Episodes: 24, EpisodesAired: 12}, 40)
			So(out, ShouldContainSubstring, "Episodes: 12/24")
		})

		Convey("Should wrap the description to the requested width", func() {
			long := strings.Repeat("word ", 30)
			out := FormatDetails(&catalog.Anime{Title: "X", Description: long}, 20)
			for _, line := range strings.Split(out, "\n") {
				So(len(line), ShouldBeLessThanOrEqualTo, 40)
			}
		})
	})
}
