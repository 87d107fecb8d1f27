package handler

import (
	"OhDear_Health_Service/internal/health-endpoint/model"
	"OhDear_Health_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingCheckResult(c *gin.Context, result model.CheckResult)
}

type logger struct {
	log *zap.Logger
}

// LoggingCheckResult logs crashed checks at error and unhealthy ones at warn.
func (l *logger) LoggingCheckResult(c *gin.Context, result model.CheckResult) {
	var level zapcore.Level
	switch result.Status {
	case model.CheckStatusOk:
		level = zap.DebugLevel
	case model.CheckStatusWarning, model.CheckStatusFailed:
		level = zap.WarnLevel
	default:
		level = zap.ErrorLevel
	}
	var data []zapcore.Field
	data = append(data, zap.String("check", result.Name))
	data = append(data, zap.String("status", string(result.Status)))
	data = append(data, zap.String("summary", result.ShortSummary))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	data = append(data, zap.String("request_id", c.GetString(middleware.RequestIDContextKey)))
	l.log.Log(level, result.NotificationMessage, data...)
}

func NewLogger(l *zap.Logger) Logger {
	return &logger{
		log: l,
	}
}
