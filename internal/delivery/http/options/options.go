package http_options

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/common"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_options "github.com/humanbelnik/kinoswap/prefform/internal/usecase/options"
)

type Controller struct {
	usecase *usecase_options.Usecase
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_options.Usecase, opts ...Option) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/movies/options", c.options)
}

type OptionsResponseDTO struct {
	Options []string `json:"options"`
}

// Options searches movies by title
// @Summary Movie options
// @Description Looks up films titled exactly as the query and appends the already selected movies
// @Tags Movies
// @Produce json
// @Param query query string true "Search text"
// @Param selected query []string false "Selected movies" collectionFormat(multi)
// @Success 200 {object} OptionsResponseDTO
// @Success 204 "Empty query, keep current options"
// @Failure 502 {object} http_common.ErrorResponse "Lookup service failed"
// @Router /movies/options [get]
func (c *Controller) options(ctx *gin.Context) {
	query := ctx.Query("query")
	selected := model.NewSelection(ctx.QueryArray("selected")...)

	options, err := c.usecase.Options(ctx.Request.Context(), query, selected)
	if err != nil {
		if errors.Is(err, usecase_options.ErrNoUpdate) {
			ctx.Status(http.StatusNoContent)
			return
		}
		c.logger.Error("failed to look up movies",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "movie lookup failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, OptionsResponseDTO{
		Options: options,
	})
}
