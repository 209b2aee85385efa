package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToDecimal(t *testing.T) {
	f := 2.25
	d := decimal.RequireFromString("7.5")

	tests := []struct {
		name      string
		input     any
		want      string
		wantValid bool
	}{
		{"nil", nil, "", false},
		{"float64", 3.5, "3.5", true},
		{"float32", float32(0.5), "0.5", true},
		{"int", 4, "4", true},
		{"int64", int64(-2), "-2", true},
		{"uint64", uint64(18446744073709551615), "18446744073709551615", true},
		{"json number", json.Number("12.3400"), "12.34", true},
		{"invalid json number", json.Number("abc"), "", false},
		{"decimal", d, "7.5", true},
		{"decimal pointer", &d, "7.5", true},
		{"nil decimal pointer", (*decimal.Decimal)(nil), "", false},
		{"float pointer", &f, "2.25", true},
		{"nil float pointer", (*float64)(nil), "", false},
		{"null decimal", decimal.NullDecimal{}, "", false},
		{"NaN", math.NaN(), "", false},
		{"positive infinity", math.Inf(1), "", false},
		{"string", "5", "", false},
		{"bool", true, "", false},
		{"map", map[string]any{"eur": 1.0}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toDecimal(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("toDecimal(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if !tt.wantValid {
				return
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Decimal.Equal(want) {
				t.Errorf("toDecimal(%v) = %s, want %s", tt.input, got.Decimal, want)
			}
		})
	}
}

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
	}{
		{"positive", 1.5, true},
		{"zero", 0, true},
		{"negative float", -0.01, false},
		{"negative int", -3, false},
		{"negative json number", json.Number("-1"), false},
		{"non-numeric", "cheap", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nonNegative(tt.input); got.Valid != tt.wantValid {
				t.Errorf("nonNegative(%v).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
		})
	}
}
