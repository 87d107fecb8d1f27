package config

import (
	"OhDear_Health_Service/internal/health-endpoint/model"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var thresholdEnvs = []string{
	"OHDEAR_TOKEN",
	"DISK_FAILURE_THRESHOLD",
	"DISK_WARNING_THRESHOLD",
	"MEMORY_FAILURE_THRESHOLD",
	"MEMORY_WARNING_THRESHOLD",
	"CPU_FAILURE_THRESHOLD",
	"CPU_WARNING_THRESHOLD",
	"CPU_TIMESPAN_MS",
}

func clearThresholdEnvs(t *testing.T) {
	for _, env := range thresholdEnvs {
		t.Setenv(env, "")
	}
}

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name           string
		envs           map[string]string
		expectedSecret string
		expectedDisk   model.Thresholds
		expectedMemory model.Thresholds
		expectedCPU    model.Thresholds
		expectedWindow time.Duration
	}{
		{
			name:           "Defaults when nothing is set",
			expectedDisk:   model.Thresholds{Warning: 80, Failure: 90},
			expectedMemory: model.Thresholds{Warning: 70, Failure: 80},
			expectedCPU:    model.Thresholds{Warning: 70, Failure: 80},
			expectedWindow: 500 * time.Millisecond,
		},
		{
			name: "Values from environment",
			envs: map[string]string{
				"OHDEAR_TOKEN":             "abc",
				"DISK_FAILURE_THRESHOLD":   "95",
				"DISK_WARNING_THRESHOLD":   "85",
				"MEMORY_FAILURE_THRESHOLD": "60",
				"MEMORY_WARNING_THRESHOLD": "50",
				"CPU_FAILURE_THRESHOLD":    "99",
				"CPU_WARNING_THRESHOLD":    "90",
				"CPU_TIMESPAN_MS":          "1500",
			},
			expectedSecret: "abc",
			expectedDisk:   model.Thresholds{Warning: 85, Failure: 95},
			expectedMemory: model.Thresholds{Warning: 50, Failure: 60},
			expectedCPU:    model.Thresholds{Warning: 90, Failure: 99},
			expectedWindow: 1500 * time.Millisecond,
		},
		{
			name: "Unparsable values fall back to defaults",
			envs: map[string]string{
				"DISK_FAILURE_THRESHOLD":   "ninety",
				"DISK_WARNING_THRESHOLD":   "12.5",
				"MEMORY_FAILURE_THRESHOLD": " 60",
				"CPU_TIMESPAN_MS":          "1s",
			},
			expectedDisk:   model.Thresholds{Warning: 80, Failure: 90},
			expectedMemory: model.Thresholds{Warning: 70, Failure: 80},
			expectedCPU:    model.Thresholds{Warning: 70, Failure: 80},
			expectedWindow: 500 * time.Millisecond,
		},
		{
			name: "Partial overrides keep remaining defaults",
			envs: map[string]string{
				"MEMORY_WARNING_THRESHOLD": "10",
				"CPU_TIMESPAN_MS":          "0",
			},
			expectedDisk:   model.Thresholds{Warning: 80, Failure: 90},
			expectedMemory: model.Thresholds{Warning: 10, Failure: 80},
			expectedCPU:    model.Thresholds{Warning: 70, Failure: 80},
			expectedWindow: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearThresholdEnvs(t)
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSecret, cfg.Auth.Secret)
			assert.Equal(t, tc.expectedDisk, cfg.Disk.Thresholds())
			assert.Equal(t, tc.expectedMemory, cfg.Memory.Thresholds())
			assert.Equal(t, tc.expectedCPU, cfg.CPU.Thresholds())
			assert.Equal(t, tc.expectedWindow, cfg.CPU.SamplingWindow())
		})
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	clearThresholdEnvs(t)
	// godotenv never overrides variables that already exist, so drop the empty ones set above.
	require.NoError(t, os.Unsetenv("DISK_WARNING_THRESHOLD"))
	require.NoError(t, os.Unsetenv("OHDEAR_TOKEN"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DISK_WARNING_THRESHOLD=42\nOHDEAR_TOKEN=from-file\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DISK_WARNING_THRESHOLD")
		os.Unsetenv("OHDEAR_TOKEN")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, int(cfg.Disk.Warning))
	assert.Equal(t, "from-file", cfg.Auth.Secret)
}

func TestLenientInt_Decode(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected LenientInt
	}{
		{"integer", "75", 75},
		{"negative integer", "-5", -5},
		{"empty string", "", 7},
		{"float", "7.5", 7},
		{"text", "abc", 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := LenientInt(7)
			assert.NoError(t, l.Decode(tc.value))
			assert.Equal(t, tc.expected, l)
		})
	}
}

func TestCPUConfig_SamplingWindow(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, CPUConfig{TimespanMs: 250}.SamplingWindow())
	assert.Equal(t, time.Duration(0), CPUConfig{TimespanMs: -10}.SamplingWindow())
}

func TestAppConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(cfg *AppConfig)
		expectError bool
	}{
		{
			name:   "Defaults are valid",
			modify: func(cfg *AppConfig) {},
		},
		{
			name: "Equal warning and failure thresholds are valid",
			modify: func(cfg *AppConfig) {
				cfg.Memory.Warning = 80
			},
		},
		{
			name: "Failure below warning",
			modify: func(cfg *AppConfig) {
				cfg.Disk.Failure = 50
			},
			expectError: true,
		},
		{
			name: "Threshold above 100",
			modify: func(cfg *AppConfig) {
				cfg.CPU.Failure = 120
			},
			expectError: true,
		},
		{
			name: "Negative sampling window",
			modify: func(cfg *AppConfig) {
				cfg.CPU.TimespanMs = -1
			},
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
