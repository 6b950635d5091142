package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/khoahotran/planmoni-site/internal/application/crudflow"
)

type terminalPrompter struct{}

func (terminalPrompter) Ask(label, current string, required bool) (string, error) {
	if required {
		label += " *"
	}
	p := promptui.Prompt{Label: label, Default: current, AllowEdit: true}
	v, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", crudflow.ErrAborted
	}
	return v, err
}

func (terminalPrompter) Confirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, crudflow.ErrAborted
	}
	return false, err
}

func (terminalPrompter) Notify(msg string) {
	fmt.Fprintln(os.Stderr, promptui.IconBad+" "+msg)
}
