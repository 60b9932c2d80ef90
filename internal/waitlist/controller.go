package waitlist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/model"
)

const (
	// DefaultSuccessResetDelay is how long the success message stays up.
	DefaultSuccessResetDelay = 5 * time.Second
	// DefaultErrorResetDelay is how long a failed write stays in the error phase.
	DefaultErrorResetDelay = 3 * time.Second
)

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("submission already in progress")
	// ErrClosed is returned after the controller has been closed.
	ErrClosed = errors.New("controller closed")
)

// RemoteWriteError reports a failed append. The cause is not distinguished.
type RemoteWriteError struct {
	Err error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("failed to append waitlist entry: %v", e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// RecordStore appends a document to a collection and returns its record ID.
type RecordStore interface {
	Append(ctx context.Context, collection string, fields model.Fields) (string, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithCollection sets the collection entries are appended to.
func WithCollection(collection string) Option {
	return func(c *Controller) { c.collection = collection }
}

// WithSource sets the source tag written with every entry.
func WithSource(source string) Option {
	return func(c *Controller) { c.source = source }
}

// WithResetDelays sets the success and error reset delays.
func WithResetDelays(success, failure time.Duration) Option {
	return func(c *Controller) {
		c.successDelay = success
		c.errorDelay = failure
	}
}

// WithClock replaces the clock used for reset timers.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithLogger sets the controller logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithObserver registers fn to receive every state change. fn is called
// without the controller lock held and must not block for long.
func WithObserver(fn func(State)) Option {
	return func(c *Controller) { c.observers = append(c.observers, fn) }
}

// Controller drives a single waitlist form.
type Controller struct {
	store        RecordStore
	clock        Clock
	logger       *logger.Logger
	collection   string
	source       string
	successDelay time.Duration
	errorDelay   time.Duration
	observers    []func(State)

	mu         sync.Mutex
	state      State
	reset      Timer
	generation uint64
	closed     bool
}

// NewController creates a Controller in the idle phase writing to store.
func NewController(store RecordStore, opts ...Option) *Controller {
	c := &Controller{
		store:        store,
		clock:        realClock{},
		collection:   DefaultCollection,
		source:       DefaultSource,
		successDelay: DefaultSuccessResetDelay,
		errorDelay:   DefaultErrorResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.NewNoop()
	}

	return c
}

// State returns the current form state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View returns the rendered form for the current state.
func (c *Controller) View() View {
	return c.State().View()
}

// SetEmail updates the input buffer. The input is locked while submitting.
func (c *Controller) SetEmail(email string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase == PhaseSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state.Email = email
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// Submit validates email and, when valid, appends one waitlist entry.
//
// It returns ErrBusy if another submission is in flight, a *ValidationError
// if the email is rejected locally and a *RemoteWriteError if the store
// fails. Any pending reset from an earlier attempt is cancelled first.
func (c *Controller) Submit(ctx context.Context, email string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state.Phase == PhaseSubmitting {
		c.mu.Unlock()
		c.logger.Debug("Waitlist controller: submit ignored, already submitting")
		return ErrBusy
	}

	c.cancelResetLocked()
	c.state.Email = email

	if err := ValidateEmail(email); err != nil {
		c.state.Phase = PhaseIdle
		c.state.ErrorMessage = MessageInvalidEmail
		snapshot := c.state
		c.mu.Unlock()

		c.logger.Debug("Waitlist controller: email rejected", "email", email)
		c.notify(snapshot)
		return err
	}

	c.state.Phase = PhaseSubmitting
	c.state.ErrorMessage = ""
	snapshot := c.state
	c.mu.Unlock()
	c.notify(snapshot)

	id, err := c.store.Append(ctx, c.collection, NewEntry(email, c.source).Fields())

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("Waitlist controller: closed during append, result dropped",
			"collection", c.collection)
		if err != nil {
			return &RemoteWriteError{Err: err}
		}
		return nil
	}
	if err != nil {
		c.state.Phase = PhaseError
		c.state.ErrorMessage = MessageRemoteFailure
		c.scheduleResetLocked(c.errorDelay)
		snapshot = c.state
		c.mu.Unlock()

		c.logger.Error("Waitlist controller: failed to append entry",
			"collection", c.collection,
			"error", err.Error())
		c.notify(snapshot)
		return &RemoteWriteError{Err: err}
	}

	c.state.Phase = PhaseSuccess
	c.state.Email = ""
	c.scheduleResetLocked(c.successDelay)
	snapshot = c.state
	c.mu.Unlock()

	c.logger.Info("Waitlist controller: entry appended",
		"collection", c.collection,
		"record_id", id)
	c.notify(snapshot)
	return nil
}

// Close cancels any pending reset. Further calls return ErrClosed and the
// outcome of an append already in flight no longer changes the state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelResetLocked()
	c.closed = true
}

func (c *Controller) cancelResetLocked() {
	if c.reset != nil {
		c.reset.Stop()
		c.reset = nil
	}
	// A timer that already fired but has not taken the lock yet sees a
	// different generation and does nothing.
	c.generation++
}

func (c *Controller) scheduleResetLocked(d time.Duration) {
	gen := c.generation
	c.reset = c.clock.AfterFunc(d, func() {
		c.resetToIdle(gen)
	})
}

func (c *Controller) resetToIdle(gen uint64) {
	c.mu.Lock()
	if c.closed || c.generation != gen {
		c.mu.Unlock()
		return
	}
	c.reset = nil
	c.state.Phase = PhaseIdle
	c.state.ErrorMessage = ""
	snapshot := c.state
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *Controller) notify(s State) {
	for _, fn := range c.observers {
		fn(s)
	}
}
