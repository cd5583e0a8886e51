package usecase_form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_options "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options"
	usecase_rows "github.com/humanbelnik/kinoswap/prefform/internal/usecase/rows"
	usecase_submission "github.com/humanbelnik/kinoswap/prefform/internal/usecase/submission"
)

var (
	ErrStaleOptions  = errors.New("options belong to a superseded search")
	ErrUnknownField  = errors.New("unknown field")
	ErrUnknownMovie  = errors.New("movie is not selected")
	ErrInvalidRating = errors.New("invalid rating")
	ErrUnknownAction = errors.New("unknown action")
)

const MessageInvalidRating = "Ratings must be between 1 and 5 in steps of 0.1."

// Quiet reports whether err only means "nothing changed".
func Quiet(err error) bool {
	return errors.Is(err, usecase_options.ErrNoUpdate) || errors.Is(err, ErrStaleOptions)
}

// Message returns the user-facing text for a rejected action.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRating):
		return MessageInvalidRating
	case errors.Is(err, ErrUnknownMovie):
		return "Select the movie before rating it."
	case errors.Is(err, usecase_options.ErrLookupFailed):
		return "Movie search is unavailable right now. Please try again."
	}
	return "Request could not be processed."
}

// Reduce returns the state after applying a. It never mutates s.
// On error the returned state equals s.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Search:
		return search(s, a)
	case OptionsLoaded:
		return optionsLoaded(s, a)
	case Select:
		return sel(s, a)
	case Rate:
		return rate(s, a)
	case Submit:
		return submit(s), nil
	}
	return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
}

func search(s State, a Search) (State, error) {
	query := strings.TrimSpace(a.Query)
	if query == "" {
		return s, usecase_options.ErrNoUpdate
	}
	s.Query = query
	s.Generation++
	return s, nil
}

func optionsLoaded(s State, a OptionsLoaded) (State, error) {
	if a.Generation != s.Generation {
		return s, ErrStaleOptions
	}
	s.MovieOptions = withSelected(a.Options, s.Movies)
	return s, nil
}

func sel(s State, a Select) (State, error) {
	if !a.Field.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
	}

	values := model.NewSelection(a.Values...)
	if a.Field.Fixed() {
		values = values.Only(s.Catalog.Options(a.Field))
	}

	switch a.Field {
	case model.FieldMovies:
		s.Movies = values
		s.MovieOptions = withSelected(s.MovieOptions, values)
		s.Ratings = s.Ratings.Prune(values)
		s.Rows = usecase_rows.Fill(usecase_rows.Generate(values), s.Ratings)
	case model.FieldGenres:
		s.Genres = values
	case model.FieldActors:
		s.Actors = values
	case model.FieldDirectors:
		s.Directors = values
	}

	s.Outcome = nil
	return s, nil
}

func rate(s State, a Rate) (State, error) {
	if !s.Movies.Contains(a.Movie) {
		return s, fmt.Errorf("%w: %q", ErrUnknownMovie, a.Movie)
	}
	if a.Value != nil && !a.Value.Valid() {
		return s, fmt.Errorf("%w: %s", ErrInvalidRating, a.Value)
	}

	ratings := s.Ratings.Prune(s.Movies)
	if a.Value == nil {
		delete(ratings, a.Movie)
	} else {
		ratings[a.Movie] = a.Value.Snap()
	}

	s.Ratings = ratings
	s.Rows = usecase_rows.Fill(s.Rows, ratings)
	s.Outcome = nil
	return s, nil
}

func submit(s State) State {
	s.Status = model.Submitted

	summary, err := usecase_submission.Aggregate(s.Status, usecase_submission.Input{
		Movies:    s.Movies,
		Ratings:   s.Ratings,
		Genres:    s.Genres,
		Actors:    s.Actors,
		Directors: s.Directors,
	})
	if err != nil {
		s.Outcome = &Outcome{Message: usecase_submission.Message(err)}
		return s
	}

	s.Outcome = &Outcome{Summary: &summary, Lines: summary.Lines()}
	return s
}

func withSelected(options []string, selected model.Selection) model.Selection {
	out := make([]string, 0, len(options)+len(selected))
	out = append(out, options...)
	out = append(out, selected...)
	return model.NewSelection(out...)
}
