package service

//go:generate mockgen -source=check_service.go -destination=../mocks/service/mock_check_service.go -package=mockservice

import (
	apperrors "OhDear_Health_Service/internal/health-endpoint/errors"
	"OhDear_Health_Service/internal/health-endpoint/metrics"
	"OhDear_Health_Service/internal/health-endpoint/model"
	"OhDear_Health_Service/internal/health-endpoint/sampler"
	"context"
	"fmt"
	"math"
	"math/bits"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type CheckService interface {
	CheckDisk(ctx context.Context, thresholds model.Thresholds) model.CheckResult
	CheckMemory(ctx context.Context, thresholds model.Thresholds) model.CheckResult
	CheckCPU(ctx context.Context, thresholds model.Thresholds, samplingWindow time.Duration) model.CheckResult
	GenerateReport(ctx context.Context) model.HealthReport
}

type CheckConfig struct {
	Disk              model.Thresholds
	Memory            model.Thresholds
	CPU               model.Thresholds
	CPUSamplingWindow time.Duration
}

type checkService struct {
	sampler sampler.Sampler
	config  CheckConfig
	logger  *zap.Logger
	metrics metrics.Metrics
	now     func() time.Time
	sleep   func(time.Duration)
}

func (s *checkService) CheckDisk(ctx context.Context, thresholds model.Thresholds) model.CheckResult {
	volumes, err := s.sampler.Volumes(ctx)
	if err != nil {
		return s.crashedResult(model.CheckNameDisk, model.CheckLabelDisk, fmt.Errorf("CheckService.CheckDisk: %w", err))
	}
	var total, available uint64
	for _, v := range volumes {
		total += v.Total
		available += v.Available
	}
	s.logger.Debug("disk usage sampled", zap.Uint64("available_bytes", available), zap.Uint64("total_bytes", total), zap.Int("volumes", len(volumes)))
	if total == 0 {
		return s.crashedResult(model.CheckNameDisk, model.CheckLabelDisk, fmt.Errorf("CheckService.CheckDisk: %w", apperrors.ErrNoDiskSpace))
	}
	p := usedPercentage(total, available)
	return model.CheckResult{
		Name:                model.CheckNameDisk,
		Label:               model.CheckLabelDisk,
		Status:              thresholds.Classify(p),
		NotificationMessage: fmt.Sprintf("The disk usage percentage is at (%d%% used)", p),
		ShortSummary:        fmt.Sprintf("%d%%", p),
	}
}

func (s *checkService) CheckMemory(ctx context.Context, thresholds model.Thresholds) model.CheckResult {
	memory, err := s.sampler.Memory(ctx)
	if err != nil {
		return s.crashedResult(model.CheckNameMemory, model.CheckLabelMemory, fmt.Errorf("CheckService.CheckMemory: %w", err))
	}
	s.logger.Debug("memory usage sampled", zap.Uint64("available_bytes", memory.Available), zap.Uint64("total_bytes", memory.Total))
	if memory.Total == 0 {
		return s.crashedResult(model.CheckNameMemory, model.CheckLabelMemory, fmt.Errorf("CheckService.CheckMemory: %w", apperrors.ErrNoMemory))
	}
	p := usedPercentage(memory.Total, memory.Available)
	return model.CheckResult{
		Name:                model.CheckNameMemory,
		Label:               model.CheckLabelMemory,
		Status:              thresholds.Classify(p),
		NotificationMessage: fmt.Sprintf("The memory usage percentage is at (%d%% used)", p),
		ShortSummary:        fmt.Sprintf("%d%%", p),
	}
}

// CheckCPU blocks for samplingWindow between its two snapshots, even when ctx is cancelled.
func (s *checkService) CheckCPU(ctx context.Context, thresholds model.Thresholds, samplingWindow time.Duration) model.CheckResult {
	first, err := s.sampler.CoreTimes(ctx)
	if err != nil {
		return s.crashedResult(model.CheckNameCPU, model.CheckLabelCPU, fmt.Errorf("CheckService.CheckCPU first sample: %w", err))
	}
	s.sleep(samplingWindow)
	second, err := s.sampler.CoreTimes(ctx)
	if err != nil {
		return s.crashedResult(model.CheckNameCPU, model.CheckLabelCPU, fmt.Errorf("CheckService.CheckCPU second sample: %w", err))
	}
	load, err := averageLoad(first, second)
	if err != nil {
		return s.crashedResult(model.CheckNameCPU, model.CheckLabelCPU, fmt.Errorf("CheckService.CheckCPU: %w", err))
	}
	s.logger.Debug("cpu load sampled", zap.Int("average_load", load), zap.Int("cores", len(second)), zap.Duration("sampling_window", samplingWindow))
	return model.CheckResult{
		Name:                model.CheckNameCPU,
		Label:               model.CheckLabelCPU,
		Status:              thresholds.Classify(load),
		NotificationMessage: fmt.Sprintf("The cpu load in the last minute is (%d%%)", load),
		ShortSummary:        fmt.Sprintf("%d%%", load),
	}
}

// GenerateReport runs the three checks concurrently. Result order is always disk, memory, cpu and
// FinishedAt is taken once every check has returned.
func (s *checkService) GenerateReport(ctx context.Context) model.HealthReport {
	start := time.Now()
	checks := []struct {
		name  string
		label string
		run   func() model.CheckResult
	}{
		{model.CheckNameDisk, model.CheckLabelDisk, func() model.CheckResult { return s.CheckDisk(ctx, s.config.Disk) }},
		{model.CheckNameMemory, model.CheckLabelMemory, func() model.CheckResult { return s.CheckMemory(ctx, s.config.Memory) }},
		{model.CheckNameCPU, model.CheckLabelCPU, func() model.CheckResult {
			return s.CheckCPU(ctx, s.config.CPU, s.config.CPUSamplingWindow)
		}},
	}
	results := make([]model.CheckResult, len(checks))
	var g errgroup.Group
	for i, check := range checks {
		i, check := i, check
		g.Go(func() error {
			checkStart := time.Now()
			defer func() {
				if r := recover(); r != nil {
					results[i] = s.crashedResult(check.name, check.label, fmt.Errorf("CheckService.GenerateReport: panic: %v", r))
				}
				s.metrics.ObserveCheck(check.name, results[i].Status, time.Since(checkStart))
			}()
			results[i] = check.run()
			return nil
		})
	}
	_ = g.Wait()
	s.metrics.ObserveReport(time.Since(start))
	return model.HealthReport{
		FinishedAt:   s.now(),
		CheckResults: results,
	}
}

func (s *checkService) crashedResult(name string, label string, err error) model.CheckResult {
	s.logger.Error("check could not be evaluated", zap.String("check", name), zap.Error(err))
	return model.CheckResult{
		Name:                name,
		Label:               label,
		Status:              model.CheckStatusCrashed,
		NotificationMessage: fmt.Sprintf("The %s could not be determined: %v", label, err),
		ShortSummary:        "unknown",
	}
}

// usedPercentage returns 100 - floor(available/total*100). total must be non zero.
func usedPercentage(total uint64, available uint64) int {
	if available > total {
		available = total
	}
	hi, lo := bits.Mul64(available, 100)
	freePercentage, _ := bits.Div64(hi, lo, total)
	return 100 - int(freePercentage)
}

// averageLoad is floor(sum of per core usage / cores). Cores are matched by position.
func averageLoad(first []model.CoreTimes, second []model.CoreTimes) (int, error) {
	if len(second) == 0 {
		return 0, apperrors.ErrNoCPUCores
	}
	if len(first) != len(second) {
		return 0, apperrors.ErrCoreMismatch
	}
	var sum float64
	for i := range second {
		sum += coreUsage(first[i], second[i])
	}
	return int(math.Floor(sum / float64(len(second)))), nil
}

func coreUsage(before model.CoreTimes, after model.CoreTimes) float64 {
	busy := after.Busy - before.Busy
	total := after.Total - before.Total
	if busy <= 0 {
		return 0
	}
	if total <= 0 {
		return 100
	}
	return math.Min(100, busy*100/total)
}

func NewCheckService(sampler sampler.Sampler, config CheckConfig, logger *zap.Logger, metrics metrics.Metrics) CheckService {
	return &checkService{
		sampler: sampler,
		config:  config,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
		sleep:   time.Sleep,
	}
}
