package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PRICE_PRECISION", "APPRAISAL_WORKERS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.PricePrecision != 2 {
		t.Errorf("PricePrecision = %d, want 2", cfg.PricePrecision)
	}
	if cfg.AppraisalWorkers != 4 {
		t.Errorf("AppraisalWorkers = %d, want 4", cfg.AppraisalWorkers)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRICE_PRECISION", "4")
	t.Setenv("APPRAISAL_WORKERS", "16")

	cfg := Load()

	if cfg.PricePrecision != 4 {
		t.Errorf("PricePrecision = %d, want 4", cfg.PricePrecision)
	}
	if cfg.AppraisalWorkers != 16 {
		t.Errorf("AppraisalWorkers = %d, want 16", cfg.AppraisalWorkers)
	}
}

func TestLoadInvalidEnvFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name      string
		precision string
		workers   string
	}{
		{"not a number", "two", "many"},
		{"below minimum", "-1", "0"},
		{"above maximum", "4294967298", "100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PRICE_PRECISION", tt.precision)
			t.Setenv("APPRAISAL_WORKERS", tt.workers)

			cfg := Load()

			if cfg.PricePrecision != 2 {
				t.Errorf("PricePrecision = %d, want default 2", cfg.PricePrecision)
			}
			if cfg.AppraisalWorkers != 4 {
				t.Errorf("AppraisalWorkers = %d, want default 4", cfg.AppraisalWorkers)
			}
		})
	}
}
