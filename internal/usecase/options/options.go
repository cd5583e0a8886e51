package usecase_options

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

var (
	ErrNoUpdate     = errors.New("no update")
	ErrLookupFailed = errors.New("movie lookup failed")
)

//go:generate mockery --name=Lookup --output=./mocks/options/lookup --filename=lookup.go
type Lookup interface {
	SearchMovies(ctx context.Context, text string) ([]string, error)
}

//go:generate mockery --name=Cache --output=./mocks/options/cache --filename=cache.go
type Cache interface {
	Get(ctx context.Context, query string) ([]string, bool, error)
	Set(ctx context.Context, query string, labels []string) error
}

type Usecase struct {
	lookup Lookup
	cache  Cache
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(lookup Lookup, cache Cache, opts ...Option) *Usecase {
	u := &Usecase{
		lookup: lookup,
		cache:  cache,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Options returns the movie candidates for query followed by the already
// selected movies, so a selection never disappears from its own dropdown.
// An empty query yields ErrNoUpdate: the caller keeps its current options.
func (u *Usecase) Options(ctx context.Context, query string, selected model.Selection) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoUpdate
	}

	candidates, err := u.search(ctx, query)
	if err != nil {
		return nil, err
	}

	return merge(candidates, selected), nil
}

func (u *Usecase) search(ctx context.Context, query string) ([]string, error) {
	// Cache is best effort
	if u.cache != nil {
		labels, ok, err := u.cache.Get(ctx, query)
		if err != nil {
			u.logger.Warn("lookup cache read failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		} else if ok {
			return labels, nil
		}
	}

	labels, err := u.lookup.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, query, labels); err != nil {
			u.logger.Warn("lookup cache write failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		}
	}

	return labels, nil
}

func merge(candidates []string, selected model.Selection) []string {
	out := make([]string, 0, len(candidates)+len(selected))
	out = append(out, candidates...)
	out = append(out, selected...)
	return model.NewSelection(out...)
}
