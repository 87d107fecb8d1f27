package apperrors

import "errors"

var (
	ErrNoDiskSpace  = errors.New("no disk space reported by any volume")
	ErrNoMemory     = errors.New("total memory reported as zero")
	ErrNoCPUCores   = errors.New("no cpu cores reported")
	ErrCoreMismatch = errors.New("cpu core count changed between samples")
)
