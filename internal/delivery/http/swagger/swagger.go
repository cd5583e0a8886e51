package http_swagger

import (
	"github.com/gin-gonic/gin"
	_ "github.com/humanbelnik/kinoswap/prefform/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

// RegisterRoutes serves the UI at /swagger/index.html and the document at /swagger/doc.json.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.DocExpansion("list"),
		ginSwagger.DefaultModelsExpandDepth(1),
	))
}
