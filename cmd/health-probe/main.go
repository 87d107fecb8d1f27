package main

import (
	health_probe "OhDear_Health_Service/internal/health-probe"
	"OhDear_Health_Service/pkg/logger"
	"context"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
)

// health-probe queries a running health endpoint and exits non zero when a check failed or crashed,
// which makes it usable as a container HEALTHCHECK command.
func main() {
	appConfig, err := health_probe.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}
	zapLogger := logger.NewLogger("warn", nil).With(zap.String("service.name", "health-probe"))
	defer zapLogger.Sync()

	client := health_probe.NewEndpointClient(appConfig.MaxRetries, appConfig.RequestTimeout, appConfig.InitialBackoff)
	report, err := client.GetHealthReport(context.Background(), appConfig.URL, appConfig.Secret)
	if err != nil {
		zapLogger.Error("failed to get health report", zap.String("url", appConfig.URL), zap.Error(err))
		os.Exit(2)
	}
	health_probe.PrintReport(os.Stdout, report)
	if !health_probe.Healthy(report) {
		os.Exit(1)
	}
}
