package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter abstracts the terminal so the form flow can be driven by a script
// in tests.
type Prompter interface {
	Input(ctx context.Context, msg, def, help string, validate func(string) error) (string, error)
	Select(ctx context.Context, msg string, options []string, def int) (int, error)
	Confirm(ctx context.Context, msg string, def bool) (bool, error)
}

type surveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter prompts on the process's terminal.
func NewSurveyPrompter(opts ...survey.AskOpt) Prompter {
	return &surveyPrompter{opts: opts}
}

func (p *surveyPrompter) Input(ctx context.Context, msg, def, help string, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{Message: msg, Default: def, Help: help}
	opts := append([]survey.AskOpt{}, p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *surveyPrompter) Select(ctx context.Context, msg string, options []string, def int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", msg)
	}
	prompt := &survey.Select{Message: msg, Options: options}
	if def >= 0 && def < len(options) {
		prompt.Default = options[def]
	}
	var out int
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func (p *surveyPrompter) Confirm(ctx context.Context, msg string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: msg, Default: def}, &out, p.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
