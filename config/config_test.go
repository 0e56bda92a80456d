package config

import (
	"testing"

	"github.com/animeon-cli/animeon/filesystem"
	"github.com/animeon-cli/animeon/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()

		So(Setup(), ShouldBeNil)

		Convey("Should register factory defaults", func() {
			So(viper.GetString(key.PlayerDefault), ShouldEqual, "mpv")
			So(viper.GetString(key.PickerBackend), ShouldEqual, "fzf")
			So(viper.GetBool(key.PreviewEnabled), ShouldBeTrue)
			So(viper.GetBool(key.CliStrictDeps), ShouldBeFalse)
		})

		Convey("Should expose every default to the environment", func() {
			So(len(EnvExposed), ShouldEqual, len(Default))
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.APITimeout]

		Convey("Env()", func() {
			So(field.Env(), ShouldEqual, "ANIMEON_API_TIMEOUT")
		})

		Convey("Pretty()", func() {
			So(field.Pretty(), ShouldContainSubstring, key.APITimeout)
		})
	})
}
