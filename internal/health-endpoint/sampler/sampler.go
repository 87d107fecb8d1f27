package sampler

//go:generate mockgen -source=sampler.go -destination=../mocks/sampler/mock_sampler.go -package=mocksampler

import (
	"OhDear_Health_Service/internal/health-endpoint/model"
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"
)

// Sampler reads raw host metrics. Every call hits the OS, nothing is cached.
type Sampler interface {
	Volumes(ctx context.Context) ([]model.VolumeUsage, error)
	Memory(ctx context.Context) (model.MemoryUsage, error)
	CoreTimes(ctx context.Context) ([]model.CoreTimes, error)
}

type hostSampler struct {
	logger *zap.Logger
}

func (h *hostSampler) Volumes(ctx context.Context) ([]model.VolumeUsage, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("Sampler.Volumes listing partitions: %w", err)
	}
	seen := make(map[string]struct{}, len(partitions))
	volumes := make([]model.VolumeUsage, 0, len(partitions))
	for _, p := range partitions {
		// the same device can be mounted at several places
		if _, ok := seen[p.Device]; ok {
			continue
		}
		usage, e := disk.UsageWithContext(ctx, p.Mountpoint)
		if e != nil {
			h.logger.Debug("skipping unreadable volume", zap.String("mountpoint", p.Mountpoint), zap.Error(e))
			continue
		}
		seen[p.Device] = struct{}{}
		volumes = append(volumes, model.VolumeUsage{
			Mountpoint: p.Mountpoint,
			Total:      usage.Total,
			Available:  usage.Free,
		})
	}
	if len(volumes) == 0 {
		// containers often expose only an overlay root which is not listed as a physical partition
		usage, e := disk.UsageWithContext(ctx, "/")
		if e != nil {
			return nil, fmt.Errorf("Sampler.Volumes reading root volume: %w", e)
		}
		volumes = append(volumes, model.VolumeUsage{
			Mountpoint: "/",
			Total:      usage.Total,
			Available:  usage.Free,
		})
	}
	return volumes, nil
}

func (h *hostSampler) Memory(ctx context.Context) (model.MemoryUsage, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.MemoryUsage{}, fmt.Errorf("Sampler.Memory: %w", err)
	}
	return model.MemoryUsage{
		Total:     vm.Total,
		Available: vm.Available,
	}, nil
}

func (h *hostSampler) CoreTimes(ctx context.Context) ([]model.CoreTimes, error) {
	times, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("Sampler.CoreTimes: %w", err)
	}
	res := make([]model.CoreTimes, len(times))
	for i, t := range times {
		// guest time is already accounted in user time
		total := t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
		res[i] = model.CoreTimes{
			CPU:   t.CPU,
			Busy:  total - t.Idle - t.Iowait,
			Total: total,
		}
	}
	return res, nil
}

func NewHostSampler(logger *zap.Logger) Sampler {
	return &hostSampler{
		logger: logger,
	}
}
