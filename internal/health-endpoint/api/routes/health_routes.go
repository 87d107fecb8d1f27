package routes

import (
	"OhDear_Health_Service/internal/health-endpoint/api/handler"
	"OhDear_Health_Service/internal/health-endpoint/api/middleware"
	pkgmiddleware "OhDear_Health_Service/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetUpHealthRoutes(r *gin.Engine, handler handler.HealthHandler, m middleware.AuthMiddleware, metricsHandler http.Handler) {
	r.GET("/health", pkgmiddleware.AcceptJSON(), m.CheckSecret(), handler.GetHealthReport())
	r.GET("/metrics", m.CheckSecret(), gin.WrapH(metricsHandler))
}
