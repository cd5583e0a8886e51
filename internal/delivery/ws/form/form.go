package ws_form

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/kinoswap/prefform/internal/delivery/http/common"
	usecase_catalog "github.com/humanbelnik/kinoswap/prefform/internal/usecase/catalog"
	usecase_form "github.com/humanbelnik/kinoswap/prefform/internal/usecase/form"
)

// Controller upgrades /form/ws requests and gives each connection its own form session.
type Controller struct {
	hub         *Hub
	catalog     *usecase_catalog.Usecase
	options     usecase_form.OptionsProvider
	reporter    usecase_form.Reporter
	idleTimeout time.Duration
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithReporter(reporter usecase_form.Reporter) Option {
	return func(c *Controller) {
		c.reporter = reporter
	}
}

func WithIdleTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.idleTimeout = d
	}
}

func NewController(
	hub *Hub,
	catalog *usecase_catalog.Usecase,
	options usecase_form.OptionsProvider,
	opts ...Option,
) *Controller {
	c := &Controller{
		hub:     hub,
		catalog: catalog,
		options: options,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/form/ws", c.serve)
}

// Serve opens a form session
// @Summary Form session
// @Description Websocket carrying form actions from the browser and state events back
// @Tags Form
// @Success 101 "Switching protocols"
// @Failure 500 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /form/ws [get]
func (c *Controller) serve(ctx *gin.Context) {
	catalog, err := c.catalog.Load(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load catalog", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade connection", slog.String("error", err.Error()))
		return
	}

	client := newClient(c.hub, conn, c.idleTimeout, c.logger)
	opts := []usecase_form.Option{usecase_form.WithLogger(c.logger)}
	if c.reporter != nil {
		opts = append(opts, usecase_form.WithReporter(c.reporter))
	}
	client.session = usecase_form.NewSession(catalog, c.options, client.publish, opts...)
	client.logger = c.logger.With(slog.String("session", client.session.ID.String()))

	if !c.hub.Register(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	client.session.Start()
	client.readPump(ctx.Request.Context())
}
