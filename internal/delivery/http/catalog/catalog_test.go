package http_catalog

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_catalog "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog"
	repo_mocks "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog/mocks/catalog/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatalogControllerSuite struct {
	suite.Suite
}

func (s *CatalogControllerSuite) BeforeAll(t provider.T) {
	gin.SetMode(gin.TestMode)
}

func (s *CatalogControllerSuite) TestCatalog(t provider.T) {
	t.Parallel()

	stored := model.Catalog{
		Genres:    []string{"Drama"},
		Actors:    []string{"Al Pacino"},
		Directors: []string{"Francis Ford Coppola"},
	}

	testCases := []struct {
		name         string
		repoErr      error
		expectedCode int
	}{
		{
			name:         "Should return option lists",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Should hide repository errors",
			repoErr:      errors.New("db down"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			repo := repo_mocks.NewRepository(t)
			repo.On("Load", mock.Anything).Return(stored, tc.repoErr).Once()
			router := gin.New()
			New(usecase_catalog.New(repo)).RegisterRoutes(router.Group("/api/v1"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

			assert.Equal(t, tc.expectedCode, w.Code)
			if tc.repoErr == nil {
				var resp model.Catalog
				t.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, stored, resp)
			}
		})
	}
}

func TestCatalogControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(CatalogControllerSuite))
}
