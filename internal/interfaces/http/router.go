package http

import (
	"github.com/furqanmax/simplepos-printing/internal/application/printing"
	"github.com/furqanmax/simplepos-printing/internal/infrastructure/logger"
	"github.com/furqanmax/simplepos-printing/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes and middleware wired
func NewRouter(service *printing.LayoutService, log *zap.Logger, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.RequestID())
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))

	layoutHandler := handler.NewLayoutHandler(service, log)

	router.GET("/healthz", layoutHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/formats", layoutHandler.ListFormats)
		v1.GET("/styles", layoutHandler.ListStyles)

		layout := v1.Group("/layout")
		{
			layout.POST("/plan", layoutHandler.PlanLayout)
			layout.POST("/render", layoutHandler.RenderDocument)
			layout.POST("/resolve", layoutHandler.ResolveFormat)
			layout.POST("/thermal-preview", layoutHandler.ThermalPreview)
		}
	}

	return router
}
