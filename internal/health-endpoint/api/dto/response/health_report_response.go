package response

import "OhDear_Health_Service/internal/health-endpoint/model"

type HealthReportResponse struct {
	FinishedAt   int64               `json:"finishedAt"`
	CheckResults []model.CheckResult `json:"checkResults"`
}

type Response struct {
	Message string `json:"message"`
}
