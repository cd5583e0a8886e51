package usecase_form

import (
	"sort"
	"testing"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_options "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options"
	usecase_submission "github.com/humanbelnik/kinoswap/prefform/internal/usecase/submission"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ReducerUnitSuite struct {
	suite.Suite
}

func testCatalog() model.Catalog {
	return model.Catalog{
		Genres:    []string{"Action", "Drama", "Horror"},
		Actors:    []string{"Tom Hanks", "Meryl Streep"},
		Directors: []string{"Steven Spielberg"},
	}
}

func rating(v float64) *model.Rating {
	r := model.Rating(v)
	return &r
}

func mustReduce(t provider.T, s State, actions ...Action) State {
	for _, a := range actions {
		var err error
		s, err = Reduce(s, a)
		t.Require().NoError(err)
	}
	return s
}

func rowMovies(rows []model.RatingRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Movie)
	}
	return out
}

func ratedMovies(rs model.Ratings) []string {
	out := make([]string, 0, len(rs))
	for m := range rs {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func (s *ReducerUnitSuite) TestRowsFollowMovies(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		actions []Action
		movies  []string
		rated   []string
	}{
		{
			name:    "Should create a row per selected movie",
			actions: []Action{Select{Field: model.FieldMovies, Values: []string{"Heat", "Alien"}}},
			movies:  []string{"Heat", "Alien"},
			rated:   []string{},
		},
		{
			name: "Should drop ratings of deselected movies",
			actions: []Action{
				Select{Field: model.FieldMovies, Values: []string{"Heat", "Alien"}},
				Rate{Movie: "Heat", Value: rating(4)},
				Rate{Movie: "Alien", Value: rating(3.5)},
				Select{Field: model.FieldMovies, Values: []string{"Alien"}},
			},
			movies: []string{"Alien"},
			rated:  []string{"Alien"},
		},
		{
			name: "Should keep ratings of movies still selected",
			actions: []Action{
				Select{Field: model.FieldMovies, Values: []string{"Heat"}},
				Rate{Movie: "Heat", Value: rating(4.5)},
				Select{Field: model.FieldMovies, Values: []string{"Alien", "Heat"}},
			},
			movies: []string{"Alien", "Heat"},
			rated:  []string{"Heat"},
		},
		{
			name: "Should clear rows when everything is deselected",
			actions: []Action{
				Select{Field: model.FieldMovies, Values: []string{"Heat"}},
				Rate{Movie: "Heat", Value: rating(2)},
				Select{Field: model.FieldMovies, Values: nil},
			},
			movies: []string{},
			rated:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			st := mustReduce(t, NewState(testCatalog()), tc.actions...)

			assert.Equal(t, tc.movies, []string(st.Movies))
			assert.Equal(t, tc.movies, rowMovies(st.Rows))
			assert.Equal(t, tc.rated, ratedMovies(st.Ratings))
			for _, row := range st.Rows {
				if r, ok := st.Ratings[row.Movie]; ok {
					t.Require().NotNil(row.Value)
					assert.Equal(t, r, *row.Value)
				} else {
					assert.Nil(t, row.Value)
				}
			}
		})
	}
}

func (s *ReducerUnitSuite) TestSearch(t provider.T) {
	t.Parallel()

	t.Run("Should ignore empty query", func(t provider.T) {
		t.Parallel()
		st := NewState(testCatalog())

		next, err := Reduce(st, Search{Query: "  "})

		assert.ErrorIs(t, err, usecase_options.ErrNoUpdate)
		assert.True(t, Quiet(err))
		assert.Equal(t, st, next)
	})

	t.Run("Should drop options of a superseded search", func(t provider.T) {
		t.Parallel()
		st := mustReduce(t, NewState(testCatalog()),
			Search{Query: "Heat"},
			OptionsLoaded{Generation: 1, Options: []string{"Heat"}},
			Search{Query: "Alien"},
		)

		next, err := Reduce(st, OptionsLoaded{Generation: 1, Options: []string{"Heat (1986)"}})

		assert.ErrorIs(t, err, ErrStaleOptions)
		assert.Equal(t, []string{"Heat"}, []string(next.MovieOptions))

		next, err = Reduce(next, OptionsLoaded{Generation: 2, Options: []string{"Alien"}})

		assert.NoError(t, err)
		assert.Equal(t, "Alien", next.Query)
		assert.Equal(t, []string{"Alien"}, []string(next.MovieOptions))
	})

	t.Run("Should keep selected movies among options", func(t provider.T) {
		t.Parallel()
		st := mustReduce(t, NewState(testCatalog()),
			Select{Field: model.FieldMovies, Values: []string{"The Godfather"}},
			Search{Query: "Heat"},
			OptionsLoaded{Generation: 1, Options: []string{"Heat"}},
		)

		assert.Equal(t, []string{"Heat", "The Godfather"}, []string(st.MovieOptions))
	})
}

func (s *ReducerUnitSuite) TestSelectFixedFields(t provider.T) {
	t.Parallel()

	st := mustReduce(t, NewState(testCatalog()),
		Select{Field: model.FieldGenres, Values: []string{"Drama", "Western", "Drama"}},
		Select{Field: model.FieldActors, Values: []string{"Meryl Streep"}},
		Select{Field: model.FieldDirectors, Values: []string{"Nobody"}},
	)

	assert.Equal(t, []string{"Drama"}, []string(st.Genres))
	assert.Equal(t, []string{"Meryl Streep"}, []string(st.Actors))
	assert.Empty(t, st.Directors)

	_, err := Reduce(st, Select{Field: "writers", Values: []string{"x"}})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func (s *ReducerUnitSuite) TestRate(t provider.T) {
	t.Parallel()

	base := mustReduce(t, NewState(testCatalog()),
		Select{Field: model.FieldMovies, Values: []string{"Heat"}},
	)

	for _, v := range []float64{0.9, 5.1, 4.55, 0} {
		_, err := Reduce(base, Rate{Movie: "Heat", Value: rating(v)})
		assert.ErrorIs(t, err, ErrInvalidRating)
		assert.Equal(t, MessageInvalidRating, Message(err))
	}

	_, err := Reduce(base, Rate{Movie: "Alien", Value: rating(3)})
	assert.ErrorIs(t, err, ErrUnknownMovie)

	rated := mustReduce(t, base, Rate{Movie: "Heat", Value: rating(1.1)})
	assert.Equal(t, model.Rating(1.1), rated.Ratings["Heat"])
	assert.Empty(t, base.Ratings, "input state must not change")

	snapped := mustReduce(t, base, Rate{Movie: "Heat", Value: rating(3.0000001)})
	assert.Equal(t, model.Rating(3), snapped.Ratings["Heat"])

	cleared := mustReduce(t, rated, Rate{Movie: "Heat"})
	assert.Empty(t, cleared.Ratings)
	assert.Nil(t, cleared.Rows[0].Value)
	assert.Equal(t, model.Rating(1.1), rated.Ratings["Heat"])
}

func (s *ReducerUnitSuite) TestSubmit(t provider.T) {
	t.Parallel()

	t.Run("Should show validation message", func(t provider.T) {
		t.Parallel()
		st := mustReduce(t, NewState(testCatalog()),
			Select{Field: model.FieldMovies, Values: []string{"The Godfather"}},
			Submit{},
		)

		assert.Equal(t, model.Submitted, st.Status)
		t.Require().NotNil(st.Outcome)
		assert.Equal(t, usecase_submission.MessageNoRatings, st.Outcome.Message)
		assert.Nil(t, st.Outcome.Summary)
	})

	t.Run("Should build summary and clear it on edit", func(t provider.T) {
		t.Parallel()
		st := mustReduce(t, NewState(testCatalog()),
			Select{Field: model.FieldMovies, Values: []string{"The Godfather"}},
			Rate{Movie: "The Godfather", Value: rating(4.5)},
			Select{Field: model.FieldGenres, Values: []string{"Drama"}},
			Submit{},
		)

		t.Require().NotNil(st.Outcome)
		assert.Equal(t, []string{
			"You have selected:",
			"Movies: The Godfather",
			"Ratings: 4.5",
			"Genres: Drama",
			"Actors: None",
			"Directors: None",
		}, st.Outcome.Lines)

		edited := mustReduce(t, st, Select{Field: model.FieldActors, Values: []string{"Tom Hanks"}})
		assert.Nil(t, edited.Outcome)
		assert.Equal(t, model.Submitted, edited.Status)

		resubmitted := mustReduce(t, edited, Submit{})
		t.Require().NotNil(resubmitted.Outcome)
		assert.Contains(t, resubmitted.Outcome.Lines, "Actors: Tom Hanks")
	})
}

func TestReducerSuite(t *testing.T) {
	suite.RunSuite(t, new(ReducerUnitSuite))
}
