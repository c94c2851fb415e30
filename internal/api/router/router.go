package router

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notice-pusher/internal/api/handlers/health"
	"github.com/aliskhannn/notice-pusher/internal/api/handlers/notice"
	"github.com/aliskhannn/notice-pusher/internal/middlewares"
)

func New(handler *notice.Handler, healthHandler *health.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	metrics := promhttp.Handler()
	e.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})
	e.GET("/healthz", healthHandler.Check)

	api := e.Group("/api/notices")
	{
		api.POST("/", handler.Create)
		api.GET("/", handler.GetAll)
		api.GET("/:id", handler.Get)
		api.PATCH("/:id", handler.Update)
		api.POST("/:id/push", handler.RequestPush)
		api.GET("/:id/push", handler.GetPushStatus)
		api.DELETE("/:id/push", handler.CancelPush)
	}

	return e
}
