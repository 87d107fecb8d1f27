package model

type VolumeUsage struct {
	Mountpoint string
	Total      uint64
	Available  uint64
}

type MemoryUsage struct {
	Total     uint64
	Available uint64
}

// CoreTimes is a cumulative CPU time snapshot of one core, in seconds.
type CoreTimes struct {
	CPU   string
	Busy  float64
	Total float64
}
