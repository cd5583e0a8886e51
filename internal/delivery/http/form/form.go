package http_form

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	usecase_catalog "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog"
)

//go:embed web/index.html web/form.js
var assets embed.FS

var page = template.Must(template.ParseFS(assets, "web/index.html"))

// Controller serves the form page and its script from the site root.
type Controller struct {
	catalog *usecase_catalog.Usecase
	wsPath  string
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(catalog *usecase_catalog.Usecase, wsPath string, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		wsPath:  wsPath,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.index)
	router.GET("/static/form.js", c.script)
}

type field struct {
	ID      string
	Label   string
	Options []string
}

type pageData struct {
	WSPath string
	Fields []field
}

func (c *Controller) index(ctx *gin.Context) {
	catalog, err := c.catalog.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load catalog", slog.String("error", err.Error()))
		ctx.String(http.StatusInternalServerError, "form is unavailable")
		return
	}

	var buf bytes.Buffer
	err = page.Execute(&buf, pageData{
		WSPath: c.wsPath,
		Fields: []field{
			{ID: "genres", Label: "Select your favorite genres:", Options: catalog.Genres},
			{ID: "actors", Label: "Select your favorite actors:", Options: catalog.Actors},
			{ID: "directors", Label: "Select your favorite directors:", Options: catalog.Directors},
		},
	})
	if err != nil {
		c.logger.Error("failed to render form", slog.String("error", err.Error()))
		ctx.String(http.StatusInternalServerError, "form is unavailable")
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (c *Controller) script(ctx *gin.Context) {
	js, err := assets.ReadFile("web/form.js")
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.Data(http.StatusOK, "text/javascript; charset=utf-8", js)
}
