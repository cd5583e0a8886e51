package http_catalog

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/common"
	usecase_catalog "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog"
)

type Controller struct {
	usecase *usecase_catalog.Usecase
	logger  *slog.Logger
}

func New(usecase *usecase_catalog.Usecase) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog", c.catalog)
}

// Catalog returns the fixed option lists
// @Summary Option catalog
// @Description Genres, actors and directors offered by the form
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.Catalog
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /catalog [get]
func (c *Controller) catalog(ctx *gin.Context) {
	catalog, err := c.usecase.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load catalog", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, catalog)
}
