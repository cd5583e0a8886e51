package http_submission

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/common"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_form "github.com/humanbelnik/kinoswap/prefform/internal/usecase/form"
	usecase_submission "github.com/humanbelnik/kinoswap/prefform/internal/usecase/submission"
)

type Controller struct {
	usecase *usecase_submission.Usecase
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_submission.Usecase, opts ...Option) *Controller {
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
	router.POST("/submissions", c.submit)
}

type SubmitRequestDTO struct {
	Submitted bool                    `json:"submitted"`
	Movies    []string                `json:"movies"`
	Ratings   map[string]model.Rating `json:"ratings"`
	Genres    []string                `json:"genres"`
	Actors    []string                `json:"actors"`
	Directors []string                `json:"directors"`
}

type SubmitResponseDTO struct {
	Summary model.Summary `json:"summary"`
	Lines   []string      `json:"lines"`
	Text    string        `json:"text"`
}

// Submit validates the form and returns its summary
// @Summary Submit preferences
// @Description Validates the selected movies and ratings and renders a summary. Nothing is stored.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body SubmitRequestDTO true "Form values"
// @Success 200 {object} SubmitResponseDTO
// @Success 204 "Not submitted yet"
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Failure 422 {object} http_common.ErrorResponse "Validation message"
// @Router /submissions [post]
func (c *Controller) submit(ctx *gin.Context) {
	var req SubmitRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	for movie, r := range req.Ratings {
		if !r.Valid() {
			ctx.JSON(http.StatusUnprocessableEntity, http_common.ErrorResponse{
				Message: usecase_form.MessageInvalidRating,
			})
			return
		}
		req.Ratings[movie] = r.Snap()
	}

	status := model.NotSubmitted
	if req.Submitted {
		status = model.Submitted
	}

	summary, err := c.usecase.Submit(ctx.Request.Context(), status, usecase_submission.Input{
		Movies:    model.NewSelection(req.Movies...),
		Ratings:   model.Ratings(req.Ratings),
		Genres:    model.NewSelection(req.Genres...),
		Actors:    model.NewSelection(req.Actors...),
		Directors: model.NewSelection(req.Directors...),
	})
	if err != nil {
		if errors.Is(err, usecase_submission.ErrNotSubmitted) {
			ctx.Status(http.StatusNoContent)
			return
		}
		c.logger.Debug("submission rejected", slog.String("error", err.Error()))
		ctx.JSON(http.StatusUnprocessableEntity, http_common.ErrorResponse{
			Message: usecase_submission.Message(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, SubmitResponseDTO{
		Summary: summary,
		Lines:   summary.Lines(),
		Text:    summary.Text(),
	})
}
