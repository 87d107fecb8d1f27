package model

import "time"

type CheckStatus string

const (
	CheckStatusOk      CheckStatus = "ok"
	CheckStatusWarning CheckStatus = "warning"
	CheckStatusFailed  CheckStatus = "failed"
	// CheckStatusCrashed is reported when a check could not produce a usage percentage at all.
	CheckStatusCrashed CheckStatus = "crashed"
)

const (
	CheckNameDisk   = "UsedDiskSpace"
	CheckNameMemory = "MemorySpace"
	CheckNameCPU    = "Load"

	CheckLabelDisk   = "Used Disk Space"
	CheckLabelMemory = "Memory Space"
	CheckLabelCPU    = "CPU Load"
)

type CheckResult struct {
	Name                string      `json:"name"`
	Label               string      `json:"label"`
	Status              CheckStatus `json:"status"`
	NotificationMessage string      `json:"notificationMessage"`
	ShortSummary        string      `json:"shortSummary"`
}

type Thresholds struct {
	Warning int
	Failure int
}

// Classify buckets a usage percentage, boundary values falling into the stricter bucket.
func (t Thresholds) Classify(percentage int) CheckStatus {
	switch {
	case percentage >= t.Failure:
		return CheckStatusFailed
	case percentage >= t.Warning:
		return CheckStatusWarning
	default:
		return CheckStatusOk
	}
}

type HealthReport struct {
	FinishedAt   time.Time
	CheckResults []CheckResult
}
