package player

import (
	"testing"

	"github.com/animeon-cli/animeon/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should resolve mpv", func() {
			viper.Set(key.PlayerDefault, "mpv")
			p, err := New()
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &MPV{})
		})

		Convey("Should resolve vlc", func() {
			viper.Set(key.PlayerDefault, "vlc")
			p, err := New()
			So(err, ShouldBeNil)
			So(p, ShouldHaveSameTypeAs, &VLC{})
		})

		Convey("Should reject unknown players", func() {
			viper.Set(key.PlayerDefault, "winamp")
			_, err := New()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestArgs(t *testing.T) {
	Convey("Argument construction", t, func() {
		urls := []string{"http://cdn/1.mp4", "http://cdn/2.mp4"}

		Convey("mpv should title the playlist and append URLs last", func() {
			m := &MPV{extraArgs: []string{"--fullscreen"}}
			args := m.args(urls, "Naruto")
			So(args[0], ShouldEqual, "--title=Naruto")
			So(args[1], ShouldEqual, "--force-media-title=Naruto")
			So(args[2], ShouldEqual, "--fullscreen")
			So(args[3:], ShouldResemble, urls)
		})

		Convey("vlc should exit after the playlist", func() {
			v := &VLC{}
			args := v.args(urls, "Naruto")
			So(args[0], ShouldEqual, "--play-and-exit")
			So(args[1], ShouldEqual, "--meta-title=Naruto")
			So(args[2:], ShouldResemble, urls)
		})
	})
}
