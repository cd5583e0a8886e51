package usecase_form

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

//go:generate mockery --name=OptionsProvider --output=./mocks/form/options --filename=options.go
type OptionsProvider interface {
	Options(ctx context.Context, query string, selected model.Selection) ([]string, error)
}

//go:generate mockery --name=Reporter --output=./mocks/form/reporter --filename=reporter.go
type Reporter interface {
	Report(ctx context.Context, s model.Summary)
}

type EventType string

const (
	EventState EventType = "state"
	EventError EventType = "error"
)

type Event struct {
	Type    EventType
	State   State
	Message string
}

// Publisher receives every event of a session in order.
// It is called with the session lock held and must not block.
type Publisher func(Event)

// Session owns the form state of one connected client.
type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	closed bool

	options  OptionsProvider
	reporter Reporter
	publish  Publisher
	logger   *slog.Logger
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithReporter(reporter Reporter) Option {
	return func(s *Session) {
		s.reporter = reporter
	}
}

func NewSession(catalog model.Catalog, options OptionsProvider, publish Publisher, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.New(),
		state:   NewState(catalog),
		options: options,
		publish: publish,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session", s.ID.String()))
	return s
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start publishes the initial state.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(Event{Type: EventState, State: s.state})
}

// Dispatch applies a to the session state and publishes the result.
// A Search additionally starts a lookup and cancels the one in flight;
// its result arrives later as another state event.
func (s *Session) Dispatch(ctx context.Context, a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return context.Canceled
	}

	next, err := Reduce(s.state, a)
	if err != nil {
		return err
	}
	s.state = next
	s.publish(Event{Type: EventState, State: next})

	switch a.(type) {
	case Search:
		s.startSearch(ctx, next)
	case Submit:
		if next.Outcome != nil && next.Outcome.Summary != nil && s.reporter != nil {
			s.reporter.Report(ctx, *next.Outcome.Summary)
		}
	}

	return nil
}

// Close cancels the pending lookup. Later dispatches are refused.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) startSearch(ctx context.Context, st State) {
	if s.cancel != nil {
		s.cancel()
	}
	lookupCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	go s.search(lookupCtx, st.Generation, st.Query, st.Movies)
}

func (s *Session) search(ctx context.Context, generation uint64, query string, selected model.Selection) {
	options, err := s.options.Options(ctx, query, selected)
	if ctx.Err() != nil {
		// superseded or closed
		return
	}
	if err != nil {
		s.logger.Warn("movie search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		s.fail(generation, err)
		return
	}

	err = s.Dispatch(ctx, OptionsLoaded{Generation: generation, Options: options})
	if err != nil && !Quiet(err) && !errors.Is(err, context.Canceled) {
		s.logger.Error("failed to apply search results", slog.String("error", err.Error()))
	}
}

func (s *Session) fail(generation uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.state.Generation {
		return
	}
	s.publish(Event{Type: EventError, State: s.state, Message: Message(err)})
}
