package domain

import (
	"encoding/json"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// toDecimal converts a numeric input into a decimal.
// Non-numeric inputs, NaN and infinities are reported as invalid.
func toDecimal(value any) decimal.NullDecimal {
	switch v := value.(type) {
	case nil:
		return decimal.NullDecimal{}
	case decimal.Decimal:
		return valid(v)
	case *decimal.Decimal:
		if v == nil {
			return decimal.NullDecimal{}
		}
		return valid(*v)
	case decimal.NullDecimal:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.NullDecimal{}
		}
		return valid(decimal.NewFromFloat(v))
	case *float64:
		if v == nil {
			return decimal.NullDecimal{}
		}
		return toDecimal(*v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.NullDecimal{}
		}
		return valid(decimal.NewFromFloat32(v))
	case int:
		return valid(decimal.NewFromInt(int64(v)))
	case int8:
		return valid(decimal.NewFromInt(int64(v)))
	case int16:
		return valid(decimal.NewFromInt(int64(v)))
	case int32:
		return valid(decimal.NewFromInt32(v))
	case int64:
		return valid(decimal.NewFromInt(v))
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return fromUint(uint64(v))
	case uint16:
		return fromUint(uint64(v))
	case uint32:
		return fromUint(uint64(v))
	case uint64:
		return fromUint(v)
	case json.Number:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return decimal.NullDecimal{}
		}
		return valid(d)
	default:
		return decimal.NullDecimal{}
	}
}

// nonNegative drops values that are not numeric or are below zero.
func nonNegative(value any) decimal.NullDecimal {
	d := toDecimal(value)
	if !d.Valid || d.Decimal.IsNegative() {
		return decimal.NullDecimal{}
	}
	return d
}

func fromUint(v uint64) decimal.NullDecimal {
	return valid(decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
