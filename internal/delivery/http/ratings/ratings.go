package http_ratings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/common"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_rows "github.com/humanbelnik/kinoswap/prefform/internal/usecase/rows"
)

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ratings/rows", c.rows)
}

type RowsRequestDTO struct {
	Movies  []string                `json:"movies"`
	Ratings map[string]model.Rating `json:"ratings,omitempty"`
}

type RowsResponseDTO struct {
	Rows []model.RatingRow `json:"rows"`
}

// Rows builds one rating input per selected movie
// @Summary Rating rows
// @Description Returns a rating input descriptor for every selected movie, in selection order
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body RowsRequestDTO true "Selected movies and known ratings"
// @Success 200 {object} RowsResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed body"
// @Router /ratings/rows [post]
func (c *Controller) rows(ctx *gin.Context) {
	var req RowsRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	selected := model.NewSelection(req.Movies...)
	ratings := model.Ratings(req.Ratings).Prune(selected)

	ctx.JSON(http.StatusOK, RowsResponseDTO{
		Rows: usecase_rows.Fill(usecase_rows.Generate(selected), ratings),
	})
}
