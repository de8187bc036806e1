// Package form holds the shorten form: its state, validation and the
// submission lifecycle shared by every front-end.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/misshanya/link-shortener/pkg/shortener"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

const (
	labelIdle = "Shorten URL"
	labelBusy = "Shortening..."
)

type client interface {
	Shorten(ctx context.Context, req shortener.Request) (*shortener.Response, error)
}

// Result is a successful submission ready for display.
type Result struct {
	ShortURL string
	Response *shortener.Response
}

// Payload returns the raw service response, indented for display.
func (r *Result) Payload() string {
	if r == nil || r.Response == nil {
		return ""
	}

	raw := r.Response.Raw
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(r.Response); err != nil {
			return ""
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// State is a snapshot of the form. Observers receive a fresh one on every change.
type State struct {
	LongURL     string
	CustomShort string
	Phase       Phase
	Error       string
	Result      *Result
}

func (s State) Submitting() bool {
	return s.Phase == PhaseSubmitting
}

// ButtonLabel is the submit control label for this state.
func (s State) ButtonLabel() string {
	if s.Submitting() {
		return labelBusy
	}
	return labelIdle
}

type Option func(*Form)

// WithObserver registers fn to be called after every state change.
func WithObserver(fn func(State)) Option {
	return func(f *Form) {
		f.observers = append(f.observers, fn)
	}
}

type Form struct {
	client client
	origin string

	mu        sync.Mutex
	state     State
	observers []func(State)
}

// New creates an idle form. origin prefixes every rendered short URL.
func New(c client, origin string, opts ...Option) *Form {
	f := &Form{client: c, origin: origin}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) SetLongURL(v string) {
	f.update(func(s *State) { s.LongURL = v })
}

func (f *Form) SetCustomShort(v string) {
	f.update(func(s *State) { s.CustomShort = v })
}

// Submit validates the input and sends exactly one request to the shortening
// service. The form is back to idle when Submit returns, whatever the outcome.
func (f *Form) Submit(ctx context.Context) (*Result, error) {
	f.mu.Lock()
	if f.state.Phase != PhaseIdle {
		f.mu.Unlock()
		return nil, ErrBusy
	}
	f.state.Phase = PhaseValidating
	f.state.Error = ""
	f.state.Result = nil
	snapshot := f.state
	f.mu.Unlock()
	f.notify(snapshot)

	if err := Validate(snapshot.LongURL); err != nil {
		f.finish(nil, err)
		return nil, err
	}

	f.update(func(s *State) { s.Phase = PhaseSubmitting })

	resp, err := f.client.Shorten(ctx, shortener.Request{
		Original: snapshot.LongURL,
		Short:    snapshot.CustomShort,
	})
	if err != nil {
		reqErr := &RequestError{Message: MsgRequestFailed, Err: err}
		if errors.Is(err, shortener.ErrUnexpectedStatus) {
			reqErr.Message = MsgRejected
		}
		f.finish(nil, reqErr)
		return nil, reqErr
	}

	result := &Result{
		ShortURL: ShortURL(f.origin, resp.Short),
		Response: resp,
	}
	f.finish(result, nil)

	return result, nil
}

func (f *Form) finish(result *Result, err error) {
	f.update(func(s *State) {
		s.Phase = PhaseIdle
		s.Result = result
		s.Error = Message(err)
	})
}

func (f *Form) update(fn func(*State)) {
	f.mu.Lock()
	fn(&f.state)
	snapshot := f.state
	f.mu.Unlock()
	f.notify(snapshot)
}

func (f *Form) notify(s State) {
	for _, fn := range f.observers {
		fn(s)
	}
}

// ShortURL joins origin and code with a single slash. An empty origin gives
// a path relative to the current host.
func ShortURL(origin, short string) string {
	return strings.TrimRight(origin, "/") + "/" + short
}
