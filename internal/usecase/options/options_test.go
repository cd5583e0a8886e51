package usecase_options

import (
	"context"
	"errors"
	"testing"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	cache_mocks "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options/mocks/options/cache"
	lookup_mocks "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options/mocks/options/lookup"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseOptionsUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	lookup  *lookup_mocks.Lookup
	cache   *cache_mocks.Cache
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	lookup := lookup_mocks.NewLookup(t)
	cache := cache_mocks.NewCache(t)

	return &resources{
		usecase: New(lookup, cache),
		lookup:  lookup,
		cache:   cache,
		ctx:     context.Background(),
	}
}

func (s *UsecaseOptionsUnitSuite) TestEmptyQuery(t provider.T) {
	t.Parallel()

	for _, query := range []string{"", "   "} {
		t.Run("Should not update on "+`"`+query+`"`, func(t provider.T) {
			t.Parallel()
			r := initResources(t)

			options, err := r.usecase.Options(r.ctx, query, model.NewSelection("The Godfather"))

			assert.ErrorIs(t, err, ErrNoUpdate)
			assert.Nil(t, options)
		})
	}
}

func (s *UsecaseOptionsUnitSuite) TestOptions(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		query      string
		selected   model.Selection
		setupMocks func(r *resources)
		expected   []string
	}{
		{
			name:     "Should append selected movies to candidates",
			query:    "Heat",
			selected: model.NewSelection("The Godfather", "Pulp Fiction"),
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "Heat").Return(nil, false, nil).Once()
				r.lookup.On("SearchMovies", r.ctx, "Heat").Return([]string{"Heat"}, nil).Once()
				r.cache.On("Set", r.ctx, "Heat", []string{"Heat"}).Return(nil).Once()
			},
			expected: []string{"Heat", "The Godfather", "Pulp Fiction"},
		},
		{
			name:     "Should not repeat a selected movie found again",
			query:    "The Godfather",
			selected: model.NewSelection("The Godfather"),
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "The Godfather").Return(nil, false, nil).Once()
				r.lookup.On("SearchMovies", r.ctx, "The Godfather").Return([]string{"The Godfather", "The Godfather"}, nil).Once()
				r.cache.On("Set", r.ctx, "The Godfather", []string{"The Godfather", "The Godfather"}).Return(nil).Once()
			},
			expected: []string{"The Godfather"},
		},
		{
			name:     "Should keep selection when lookup finds nothing",
			query:    "zzzz",
			selected: model.NewSelection("Forrest Gump"),
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "zzzz").Return(nil, false, nil).Once()
				r.lookup.On("SearchMovies", r.ctx, "zzzz").Return([]string{}, nil).Once()
				r.cache.On("Set", r.ctx, "zzzz", []string{}).Return(nil).Once()
			},
			expected: []string{"Forrest Gump"},
		},
		{
			name:     "Should serve cached labels without lookup",
			query:    "  Heat ",
			selected: model.NewSelection(),
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "Heat").Return([]string{"Heat"}, true, nil).Once()
			},
			expected: []string{"Heat"},
		},
		{
			name:     "Should ignore cache failures",
			query:    "Heat",
			selected: model.NewSelection(),
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "Heat").Return(nil, false, errors.New("redis down")).Once()
				r.lookup.On("SearchMovies", r.ctx, "Heat").Return([]string{"Heat"}, nil).Once()
				r.cache.On("Set", r.ctx, "Heat", []string{"Heat"}).Return(errors.New("redis down")).Once()
			},
			expected: []string{"Heat"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			options, err := r.usecase.Options(r.ctx, tc.query, tc.selected)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, options)
			for _, movie := range tc.selected {
				assert.Contains(t, options, movie)
			}
		})
	}
}

func (s *UsecaseOptionsUnitSuite) TestLookupFailure(t provider.T) {
	t.Parallel()

	t.Run("Should surface lookup errors", func(t provider.T) {
		r := initResources(t)
		lookupErr := errors.New("status 500")
		r.cache.On("Get", r.ctx, "Heat").Return(nil, false, nil).Once()
		r.lookup.On("SearchMovies", r.ctx, "Heat").Return(nil, lookupErr).Once()

		options, err := r.usecase.Options(r.ctx, "Heat", model.NewSelection("Forrest Gump"))

		assert.ErrorIs(t, err, ErrLookupFailed)
		assert.ErrorIs(t, err, lookupErr)
		assert.Nil(t, options)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseOptionsUnitSuite))
}
