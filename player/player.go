// Package player hands resolved video URLs over to an external media player.
package player

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/spf13/viper"
)

// Player launches playback of one or more stream URLs under a display title.
type Player interface {
	Play(urls []string, title string) error
}

// New resolves the configured media player.
func New() (Player, error) {
	extra := viper.GetStringSlice(key.PlayerExtraArgs)

	switch name := viper.GetString(key.PlayerDefault); name {
	case "mpv":
		return &MPV{extraArgs: extra}, nil
	case "vlc":
		return &VLC{extraArgs: extra}, nil
	default:
		return nil, fmt.Errorf("unsupported player %q, expected mpv or vlc", name)
	}
}

func launch(binary string, args []string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", binary, err)
	}

	cmd := exec.Command(binary, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	log.Debugf("Executing: %s", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited with an error: %w", binary, err)
	}

	return nil
}

// MPV plays URLs with mpv, queueing multiple URLs as a playlist.
type MPV struct {
	extraArgs []string
}

func (m *MPV) Play(urls []string, title string) error {
	return launch("mpv", m.args(urls, title))
}

func (m *MPV) args(urls []string, title string) []string {
	args := []string{"--title=" + title, "--force-media-title=" + title}
	args = append(args, m.extraArgs...)
	return append(args, urls...)
}

// VLC plays URLs with VLC and exits when the playlist finishes.
type VLC struct {
	extraArgs []string
}

func (v *VLC) Play(urls []string, title string) error {
	return launch("vlc", v.args(urls, title))
}

func (v *VLC) args(urls []string, title string) []string {
	args := []string{"--play-and-exit", "--meta-title=" + title}
	args = append(args, v.extraArgs...)
	return append(args, urls...)
}
