package usecase_submission

import (
	"context"
	"errors"
	"log/slog"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
)

var (
	ErrNotSubmitted = errors.New("not submitted")
	ErrNoMovies     = errors.New("no movies selected")
	ErrNoRatings    = errors.New("missing ratings")
)

const (
	MessageNoMovies  = "Please select at least one movie."
	MessageNoRatings = "Please enter ratings for all selected movies."
)

// Message returns the text shown to the user for a validation error,
// or "" when err is not one.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoMovies):
		return MessageNoMovies
	case errors.Is(err, ErrNoRatings):
		return MessageNoRatings
	}
	return ""
}

type Input struct {
	Movies    model.Selection
	Ratings   model.Ratings
	Genres    model.Selection
	Actors    model.Selection
	Directors model.Selection
}

// Aggregate validates the form and builds its summary.
// Every call starts from the given input; nothing is remembered between submits.
func Aggregate(status model.SubmissionStatus, in Input) (model.Summary, error) {
	if status != model.Submitted {
		return model.Summary{}, ErrNotSubmitted
	}

	movies := model.NewSelection(in.Movies...)
	if movies.Empty() {
		return model.Summary{}, ErrNoMovies
	}

	ratings := in.Ratings.For(movies)
	if len(ratings) == 0 {
		return model.Summary{}, ErrNoRatings
	}

	return model.Summary{
		Movies:    movies,
		Ratings:   ratings,
		Genres:    model.NewSelection(in.Genres...),
		Actors:    model.NewSelection(in.Actors...),
		Directors: model.NewSelection(in.Directors...),
	}, nil
}

type Usecase struct {
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(opts ...Option) *Usecase {
	u := &Usecase{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Submit(ctx context.Context, status model.SubmissionStatus, in Input) (model.Summary, error) {
	summary, err := Aggregate(status, in)
	if err != nil {
		return model.Summary{}, err
	}

	u.Report(ctx, summary)
	return summary, nil
}

// Report logs an accepted submission.
func (u *Usecase) Report(ctx context.Context, s model.Summary) {
	u.logger.InfoContext(ctx, "preferences submitted",
		slog.Any("movies", []string(s.Movies)),
		slog.Any("ratings", s.Ratings),
		slog.Any("genres", []string(s.Genres)),
		slog.Any("actors", []string(s.Actors)),
		slog.Any("directors", []string(s.Directors)),
	)
}
