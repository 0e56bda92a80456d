package prompt

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/animeon-cli/animeon/key"
	"github.com/animeon-cli/animeon/log"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// fzf exits with 130 when the user cancels with ESC or an interrupt.
const fzfCancelCode = 130

var fzfBaseArgs = []string{
	"--reverse",
	"--cycle",
	"--border=rounded",
	"--preview-window=left:30%:wrap,border-rounded",
	"--pointer=❯",
	"--marker=◆ ",
}

// Fzf drives an external fzf process over a newline-joined label protocol.
type Fzf struct {
	extraArgs []string
}

// NewFzf creates an fzf-backed prompter configured from global settings.
func NewFzf() *Fzf {
	return &Fzf{extraArgs: viper.GetStringSlice(key.PickerFzfExtraArgs)}
}

func (f *Fzf) Pick(options []string, opts Options) mo.Option[string] {
	return f.run(options, opts, false)
}

func (f *Fzf) PickMany(options []string, opts Options) mo.Option[[]string] {
	selected, ok := f.run(options, opts, true).Get()
	if !ok {
		return mo.None[[]string]()
	}

	return mo.Some(strings.Split(selected, "\n"))
}

func (f *Fzf) buildArgs(opts Options, multi bool) []string {
	args := append([]string{}, fzfBaseArgs...)

	if opts.Title != "" {
		args = append(args, "--prompt", opts.Title)
	}
	if opts.Preview != "" {
		args = append(args, "--preview", opts.Preview)
	}
	if multi {
		args = append(args, "--multi")
	}

	return append(args, f.extraArgs...)
}

func (f *Fzf) run(options []string, opts Options, multi bool) mo.Option[string] {
	if len(options) == 0 {
		log.Info("No options available for selection")
		return mo.None[string]()
	}

	cmd := exec.Command("fzf", f.buildArgs(opts, multi)...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	// fzf draws its interface on the terminal, stdout carries only the selection.
	cmd.Stderr = os.Stderr

	log.Debugf("Executing: %s", strings.Join(cmd.Args, " "))

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr) && exitErr.ExitCode() == fzfCancelCode:
			log.Info("Selection cancelled by user")
		case errors.Is(err, exec.ErrNotFound):
			log.Error("fzf not found. Please install it and try again")
		default:
			log.Errorf("fzf failed: %s", err)
		}
		return mo.None[string]()
	}

	selected := strings.TrimRight(string(out), "\n")
	if selected == "" {
		return mo.None[string]()
	}

	return mo.Some(selected)
}
