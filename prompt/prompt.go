// Package prompt defines the interactive picker capability and its selectable backends.
//
// A picker presents a list of textual labels and collapses the user's choice
// back into the chosen label(s). "Nothing selected" is a valid outcome, never
// an error: cancellation, interrupts and missing backends all map to an
// absent result.
package prompt

import (
	"os/exec"

	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Options carries per-invocation presentation hints.
type Options struct {
	// Title is the input prompt text.
	Title string
	// Preview is a shell command executed per highlighted label,
	// with {} substituted by the label. Only the fzf backend supports it.
	Preview string
}

// Prompter encapsulates the required capabilities of an interactive chooser.
type Prompter interface {
	// Pick prompts for a single option.
	Pick(options []string, opts Options) mo.Option[string]

	// PickMany prompts for one or more options.
	PickMany(options []string, opts Options) mo.Option[[]string]
}

// New resolves the picker backend from global configuration.
// When fzf is requested but not installed, the builtin picker takes over with a warning.
func New() Prompter {
	switch backend := viper.GetString(key.PickerBackend); backend {
	case "survey":
		return &Survey{}
	case "builtin":
		return &Builtin{}
	default:
		if _, err := exec.LookPath("fzf"); err != nil {
			log.Warn("fzf not found in PATH, falling back to the builtin picker")
			return &Builtin{}
		}
		return NewFzf()
	}
}
