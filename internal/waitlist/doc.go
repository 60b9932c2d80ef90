// Package waitlist implements the prelaunch waitlist submission controller.
//
// A Controller owns the state of one email form: the input buffer, the
// submission phase and the message shown to the user. Each valid submit
// performs exactly one append against an injected RecordStore and moves the
// form through idle -> submitting -> success|error -> idle, where the last
// step is driven by a cancellable reset timer.
package waitlist
