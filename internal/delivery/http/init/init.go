package http_init

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	apiPrefix       = "/api/v1"
	shutdownTimeout = 5 * time.Second
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	pages  []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
}

// NewControllerPool builds the engine in the given gin mode ("debug", "release" or "test").
func NewControllerPool(mode string) *ControllerPool {
	if mode != "" {
		gin.SetMode(mode)
	}
	engine := gin.Default()
	rg := engine.Group(apiPrefix)
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		pages:  make([]Controller, 0, 2),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pages {
		c.RegisterRoutes(&pool.engine.RouterGroup)
	}
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

// RunAll serves until ctx is done, then drains in-flight requests.
func (pool *ControllerPool) RunAll(ctx context.Context, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: pool.engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("failed to shut down HTTP server: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

// Add mounts c under /api/v1.
func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

// AddPage mounts c at the site root.
func (pool *ControllerPool) AddPage(c Controller) {
	pool.pages = append(pool.pages, c)
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}
