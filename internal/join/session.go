// Package join runs the waitlist form in a terminal.
package join

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dtroode/studyflow-waitlist/internal/waitlist"
)

const (
	emailPrompt   = "Email"
	emailHelp     = "Enter your email"
	anotherPrompt = "Add another email?"
)

// Form is the part of the waitlist controller the session drives.
type Form interface {
	SetEmail(email string) error
	Submit(ctx context.Context, email string) error
	View() waitlist.View
}

// Session renders a waitlist form to out and reads answers from a Prompter.
type Session struct {
	form     Form
	prompter Prompter
	out      io.Writer
	heading  string
	lead     string
}

// NewSession creates a Session.
func NewSession(form Form, prompter Prompter, out io.Writer, heading, lead string) *Session {
	return &Session{
		form:     form,
		prompter: prompter,
		out:      out,
		heading:  heading,
		lead:     lead,
	}
}

// Render writes the phase-dependent form text for v.
func Render(w io.Writer, v waitlist.View) {
	if v.InputDisabled {
		fmt.Fprintf(w, "[%s]\n", v.ButtonLabel)
		return
	}
	if v.SuccessMessage != "" {
		fmt.Fprintf(w, "✔ %s\n", v.SuccessMessage)
	}
	if v.ErrorMessage != "" {
		fmt.Fprintf(w, "✘ %s\n", v.ErrorMessage)
	}
}

// BusyRenderer returns a controller observer that renders the form while a
// submission is in flight. Other phases are rendered by Run once Submit
// returns.
func BusyRenderer(w io.Writer) func(waitlist.State) {
	return func(s waitlist.State) {
		if s.Phase == waitlist.PhaseSubmitting {
			Render(w, s.View())
		}
	}
}

// Run prompts for emails until the user declines another attempt. A
// rejected email is asked for again without leaving the loop.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "%s\n%s\n\n", s.heading, s.lead)

	for {
		email, err := s.prompter.Email(ctx, fmt.Sprintf("%s [%s]", emailPrompt, s.form.View().ButtonLabel), emailHelp)
		if err != nil {
			return err
		}
		if err := s.form.SetEmail(email); err != nil {
			return err
		}

		err = s.form.Submit(ctx, email)
		Render(s.out, s.form.View())

		var verr *waitlist.ValidationError
		var rerr *waitlist.RemoteWriteError
		switch {
		case errors.As(err, &verr):
			continue
		case errors.As(err, &rerr), err == nil:
		default:
			return err
		}

		again, err := s.prompter.Confirm(ctx, anotherPrompt)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
