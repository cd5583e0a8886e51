package catalog_static

import (
	"context"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type StaticCatalogSuite struct {
	suite.Suite
}

func (s *StaticCatalogSuite) TestLoad(t provider.T) {
	t.Parallel()

	catalog, err := New().Load(context.Background())

	t.Require().NoError(err)
	assert.Len(t, catalog.Genres, 6)
	assert.Len(t, catalog.Actors, 10)
	assert.Len(t, catalog.Directors, 5)
	assert.Equal(t, "Action", catalog.Genres[0])
}

func (s *StaticCatalogSuite) TestLoadReturnsCopies(t provider.T) {
	t.Parallel()

	first, err := New().Load(context.Background())
	t.Require().NoError(err)
	first.Genres[0] = "Western"

	second, err := New().Load(context.Background())
	t.Require().NoError(err)
	assert.Equal(t, "Action", second.Genres[0])
}

func TestStaticCatalogSuite(t *testing.T) {
	suite.RunSuite(t, new(StaticCatalogSuite))
}
