package config

import (
	"OhDear_Health_Service/internal/health-endpoint/model"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server ServerConfig
	Auth   AuthConfig
	Disk   DiskConfig
	Memory MemoryConfig
	CPU    CPUConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE" default:"./log/health-endpoint.log"`
	RateLimitRPS    float64       `envconfig:"RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst  int           `envconfig:"RATE_LIMIT_BURST" default:"1"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	// Secret disables authentication when empty.
	Secret string `envconfig:"OHDEAR_TOKEN"`
}

type DiskConfig struct {
	Warning LenientInt `envconfig:"DISK_WARNING_THRESHOLD" validate:"gte=0,lte=100"`
	Failure LenientInt `envconfig:"DISK_FAILURE_THRESHOLD" validate:"gte=0,lte=100,gtefield=Warning"`
}

type MemoryConfig struct {
	Warning LenientInt `envconfig:"MEMORY_WARNING_THRESHOLD" validate:"gte=0,lte=100"`
	Failure LenientInt `envconfig:"MEMORY_FAILURE_THRESHOLD" validate:"gte=0,lte=100,gtefield=Warning"`
}

type CPUConfig struct {
	Warning    LenientInt `envconfig:"CPU_WARNING_THRESHOLD" validate:"gte=0,lte=100"`
	Failure    LenientInt `envconfig:"CPU_FAILURE_THRESHOLD" validate:"gte=0,lte=100,gtefield=Warning"`
	TimespanMs LenientInt `envconfig:"CPU_TIMESPAN_MS" validate:"gte=0"`
}

// LenientInt keeps its current value when the environment holds something that is not an integer.
type LenientInt int

func (l *LenientInt) Decode(value string) error {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	*l = LenientInt(v)
	return nil
}

func (d DiskConfig) Thresholds() model.Thresholds {
	return model.Thresholds{Warning: int(d.Warning), Failure: int(d.Failure)}
}

func (m MemoryConfig) Thresholds() model.Thresholds {
	return model.Thresholds{Warning: int(m.Warning), Failure: int(m.Failure)}
}

func (c CPUConfig) Thresholds() model.Thresholds {
	return model.Thresholds{Warning: int(c.Warning), Failure: int(c.Failure)}
}

func (c CPUConfig) SamplingWindow() time.Duration {
	if c.TimespanMs < 0 {
		return 0
	}
	return time.Duration(c.TimespanMs) * time.Millisecond
}

func DefaultConfig() AppConfig {
	return AppConfig{
		Disk:   DiskConfig{Warning: 80, Failure: 90},
		Memory: MemoryConfig{Warning: 70, Failure: 80},
		CPU:    CPUConfig{Warning: 70, Failure: 80, TimespanMs: 500},
	}
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	cfg := DefaultConfig()
	err := envconfig.Process("", &cfg)
	return cfg, err
}

// Validate reports thresholds outside 0..100 or failure thresholds below their warning threshold.
// The evaluator works with any values, so callers are expected to log the result rather than abort.
func (c AppConfig) Validate() error {
	v := validator.New()
	var errs []error
	for _, s := range []interface{}{c.Disk, c.Memory, c.CPU} {
		if err := v.Struct(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
