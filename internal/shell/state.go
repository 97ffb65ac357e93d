// Package shell holds the navigation state of the interactive front end
// independently of any terminal toolkit.
package shell

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/sdui/internal/model"
)

// Phase is the shell's current screen.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseLoading:
		return "loading"
	case PhaseRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// TransitionError reports an event that is not valid in the current phase.
type TransitionError struct {
	Event string
	From  Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while %s", e.Event, e.From)
}

// State is an immutable snapshot. Transitions return a new State and leave
// the receiver unchanged.
type State struct {
	Phase  Phase
	Prompt string
	Screen *model.Screen
	Err    error

	// previous is the phase restored by Fail.
	previous Phase
	// kept is the screen restored by Fail when previous is PhaseRendered.
	kept *model.Screen
}

// Submit starts generating a screen for prompt. It is valid from Empty and
// from Rendered, so a new prompt can replace the current screen.
func (s State) Submit(prompt string) (State, error) {
	prompt = strings.TrimSpace(prompt)
	if s.Phase == PhaseLoading {
		return s, &TransitionError{Event: "submit", From: s.Phase}
	}
	if prompt == "" {
		return s, fmt.Errorf("prompt is empty")
	}
	return State{
		Phase:    PhaseLoading,
		Prompt:   prompt,
		previous: s.Phase,
		kept:     s.Screen,
	}, nil
}

// Complete shows screen. Valid only while loading.
func (s State) Complete(screen *model.Screen) (State, error) {
	if s.Phase != PhaseLoading {
		return s, &TransitionError{Event: "complete", From: s.Phase}
	}
	if screen == nil {
		return s.Fail(fmt.Errorf("generator returned no screen"))
	}
	return State{Phase: PhaseRendered, Prompt: s.Prompt, Screen: screen}, nil
}

// Fail returns to the phase that preceded loading and records err. A screen
// that was visible before the prompt is kept.
func (s State) Fail(err error) (State, error) {
	if s.Phase != PhaseLoading {
		return s, &TransitionError{Event: "fail", From: s.Phase}
	}
	next := State{Phase: s.previous, Prompt: s.Prompt, Err: err}
	if s.previous == PhaseRendered {
		next.Screen = s.kept
	}
	return next, nil
}

// Back leaves a rendered screen.
func (s State) Back() (State, error) {
	if s.Phase != PhaseRendered {
		return s, &TransitionError{Event: "back", From: s.Phase}
	}
	return State{Phase: PhaseEmpty}, nil
}
