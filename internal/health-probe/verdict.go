package health_probe

import (
	"OhDear_Health_Service/internal/health-endpoint/api/dto/response"
	"OhDear_Health_Service/internal/health-endpoint/model"
	"fmt"
	"io"
)

// Healthy reports false when any check failed or crashed. Warnings alone keep the host healthy.
func Healthy(report response.HealthReportResponse) bool {
	for _, r := range report.CheckResults {
		if r.Status == model.CheckStatusFailed || r.Status == model.CheckStatusCrashed {
			return false
		}
	}
	return true
}

func PrintReport(w io.Writer, report response.HealthReportResponse) {
	for _, r := range report.CheckResults {
		fmt.Fprintf(w, "%-16s %-8s %-8s %s\n", r.Label, r.Status, r.ShortSummary, r.NotificationMessage)
	}
}
