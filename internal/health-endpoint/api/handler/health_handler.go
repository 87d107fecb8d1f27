package handler

//go:generate mockgen -source=health_handler.go -destination=../../mocks/api/handler/mock_health_handler.go -package=mockhandler

import (
	"OhDear_Health_Service/internal/health-endpoint/api/dto/response"
	"OhDear_Health_Service/internal/health-endpoint/service"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler interface {
	GetHealthReport() gin.HandlerFunc
}

type healthHandler struct {
	logger       Logger
	checkService service.CheckService
}

func (h *healthHandler) GetHealthReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		// a client hanging up does not cut the cpu sampling window short
		report := h.checkService.GenerateReport(context.WithoutCancel(c.Request.Context()))
		for _, result := range report.CheckResults {
			h.logger.LoggingCheckResult(c, result)
		}
		c.JSON(http.StatusOK, response.HealthReportResponse{
			FinishedAt:   report.FinishedAt.Unix(),
			CheckResults: report.CheckResults,
		})
	}
}

func NewHealthHandler(logger Logger, checkService service.CheckService) HealthHandler {
	return &healthHandler{
		logger:       logger,
		checkService: checkService,
	}
}
