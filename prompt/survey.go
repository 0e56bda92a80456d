package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/animeon-cli/animeon/log"
	"github.com/samber/mo"
)

// Survey is a minimal fallback prompter built on the survey library.
// It has no preview support.
type Survey struct{}

func (s *Survey) Pick(options []string, opts Options) mo.Option[string] {
	if len(options) == 0 {
		log.Info("No options available for selection")
		return mo.None[string]()
	}

	var answer string
	err := survey.AskOne(&survey.Select{
		Message:  opts.Title,
		Options:  options,
		PageSize: 15,
	}, &answer)
	if err != nil {
		return absorb[string](err)
	}

	return mo.Some(answer)
}

func (s *Survey) PickMany(options []string, opts Options) mo.Option[[]string] {
	if len(options) == 0 {
		log.Info("No options available for selection")
		return mo.None[[]string]()
	}

	var answers []string
	err := survey.AskOne(&survey.MultiSelect{
		Message:  opts.Title,
		Options:  options,
		PageSize: 15,
	}, &answers)
	if err != nil {
		return absorb[[]string](err)
	}

	if len(answers) == 0 {
		return mo.None[[]string]()
	}

	return mo.Some(answers)
}

func absorb[T any](err error) mo.Option[T] {
	if errors.Is(err, terminal.InterruptErr) {
		log.Info("Selection cancelled by user")
	} else {
		log.Errorf("survey prompt failed: %s", err)
	}

	return mo.None[T]()
}
