package health_probe

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	URL            string        `envconfig:"PROBE_URL" default:"http://127.0.0.1:8080/health"`
	Secret         string        `envconfig:"OHDEAR_TOKEN"`
	MaxRetries     int           `envconfig:"PROBE_MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"PROBE_INITIAL_BACKOFF" default:"200ms"`
	RequestTimeout time.Duration `envconfig:"PROBE_REQUEST_TIMEOUT" default:"5s"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
