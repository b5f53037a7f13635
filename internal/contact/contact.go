// Package contact tracks the contact form's delivery through the message
// relay.
package contact

import (
	"context"
	"errors"
	"log"
	"sync"
)

// State is the status of the most recent submission.
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// ErrInFlight is returned when a submission arrives while another is still
// waiting on the relay.
var ErrInFlight = errors.New("a message is already being sent")

// Fields are the form values read at submit time.
type Fields struct {
	Name    string
	Email   string
	Message string
}

// Form field names, shared by the page template and the relay template.
const (
	FieldName    = "user_name"
	FieldEmail   = "user_email"
	FieldMessage = "message"
)

// Params maps the fields to relay template parameters.
func (f Fields) Params() map[string]string {
	return map[string]string{
		FieldName:    f.Name,
		FieldEmail:   f.Email,
		FieldMessage: f.Message,
	}
}

// Relay delivers a message. Any error means the message was not sent.
type Relay interface {
	Send(ctx context.Context, params map[string]string) error
}

// Result is what the form should show after a submission.
type Result struct {
	State   State
	Sending bool
	Fields  Fields
}

// Controller owns one visitor's submission state. At most one relay call is
// outstanding per Controller.
type Controller struct {
	relay    Relay
	observer func(State)

	mu      sync.Mutex
	state   State
	sending bool
	fields  Fields
}

// NewController returns an idle Controller. observer may be nil; it is
// called after every state transition, outside the lock.
func NewController(relay Relay, observer func(State)) *Controller {
	return &Controller{relay: relay, observer: observer, state: StateIdle}
}

// Snapshot returns the current form view.
func (c *Controller) Snapshot() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Result {
	return Result{State: c.state, Sending: c.sending, Fields: c.fields}
}

// Submit sends f through the relay. It enters StateSending before the relay
// is called and ends in StateSuccess with cleared fields or StateError with
// f preserved. The sending flag is cleared on every exit path, and a relay
// that panics leaves the controller in StateError. The relay error is
// returned alongside the error Result.
func (c *Controller) Submit(ctx context.Context, f Fields) (res Result, err error) {
	c.mu.Lock()
	if c.sending {
		res = c.snapshotLocked()
		c.mu.Unlock()
		return res, ErrInFlight
	}
	c.sending = true
	c.state = StateSending
	c.fields = f
	c.mu.Unlock()
	c.notify(StateSending)

	defer func() {
		c.mu.Lock()
		c.sending = false
		abandoned := c.state == StateSending
		if abandoned {
			c.state = StateError
		}
		res = c.snapshotLocked()
		c.mu.Unlock()
		if abandoned {
			c.notify(StateError)
		}
	}()

	if err = c.relay.Send(ctx, f.Params()); err != nil {
		log.Printf("Contact message from %s not delivered: %v", f.Email, err)
		c.settle(StateError, f)
		return res, err
	}
	c.settle(StateSuccess, Fields{})
	return res, nil
}

func (c *Controller) settle(s State, f Fields) {
	c.mu.Lock()
	c.state = s
	c.fields = f
	c.mu.Unlock()
	c.notify(s)
}

func (c *Controller) notify(s State) {
	if c.observer != nil {
		c.observer(s)
	}
}
