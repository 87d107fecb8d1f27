package main

import (
	"OhDear_Health_Service/internal/health-endpoint/api/handler"
	"OhDear_Health_Service/internal/health-endpoint/api/middleware"
	"OhDear_Health_Service/internal/health-endpoint/api/routes"
	"OhDear_Health_Service/internal/health-endpoint/config"
	"OhDear_Health_Service/internal/health-endpoint/metrics"
	"OhDear_Health_Service/internal/health-endpoint/sampler"
	"OhDear_Health_Service/internal/health-endpoint/service"
	"OhDear_Health_Service/pkg/logger"
	pkgmiddleware "OhDear_Health_Service/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "health-endpoint"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	if err = appConfig.Validate(); err != nil {
		zapLogger.Warn("suspicious threshold configuration, using it anyway", zap.Error(err))
	}
	if appConfig.Auth.Secret == "" {
		zapLogger.Warn("OHDEAR_TOKEN is not set, health endpoint is not authenticated")
	}

	// set up dependencies
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	checkService := service.NewCheckService(sampler.NewHostSampler(zapLogger), service.CheckConfig{
		Disk:              appConfig.Disk.Thresholds(),
		Memory:            appConfig.Memory.Thresholds(),
		CPU:               appConfig.CPU.Thresholds(),
		CPUSamplingWindow: appConfig.CPU.SamplingWindow(),
	}, zapLogger, appMetrics)
	healthHandler := handler.NewHealthHandler(handler.NewLogger(zapLogger), checkService)
	m := middleware.NewAuthMiddleware(appConfig.Auth.Secret, appMetrics)

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), pkgmiddleware.RequestID(), pkgmiddleware.AccessLog(zapLogger),
		pkgmiddleware.RateLimit(appConfig.Server.RateLimitRPS, appConfig.Server.RateLimitBurst))

	routes.SetUpHealthRoutes(r, healthHandler, m, appMetrics.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
