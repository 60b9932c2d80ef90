package waitlist

// User facing copy of the form.
const (
	LabelJoin            = "Join Now"
	LabelJoining         = "Joining..."
	MessageSuccess       = "You’re in! Get ready to flow."
	MessageInvalidEmail  = "Please enter a valid email!"
	MessageRemoteFailure = "Oops! Something went wrong. Try again."
)

// State is a snapshot of a form.
type State struct {
	Email        string
	Phase        Phase
	ErrorMessage string
}

// View is what a surface renders for a State.
type View struct {
	ButtonLabel    string
	InputDisabled  bool
	SuccessMessage string
	ErrorMessage   string
}

// View derives the rendered form. The error message is shown whenever one is
// set, which covers both validation failures (phase idle) and failed writes.
func (s State) View() View {
	v := View{
		ButtonLabel:  LabelJoin,
		ErrorMessage: s.ErrorMessage,
	}

	switch s.Phase {
	case PhaseSubmitting:
		v.ButtonLabel = LabelJoining
		v.InputDisabled = true
	case PhaseSuccess:
		v.SuccessMessage = MessageSuccess
	}

	return v
}
