package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenSide identifies a printed face of a token.
type TokenSide string

const (
	TokenSideFront TokenSide = "front"
	TokenSideBack  TokenSide = "back"
)

// ValuationStrategy overrides the built-in side comparison and value difference.
// The analyzer argument is handed through from the caller untouched.
type ValuationStrategy interface {
	MoreValuableSide(v TokenValuation, analyzer any) (TokenSide, bool)
	ValueDifference(v TokenValuation, analyzer any) (decimal.Decimal, bool)
}

// TokenValuation links a front face, an optional back face and their prices.
// Back fields are only meaningful when IsDoubleSided is set.
type TokenValuation struct {
	FrontSide              TokenIdentity
	BackSide               *TokenIdentity
	FrontPrice             *PriceRecord
	BackPrice              *PriceRecord
	FrontCollectorNumber   string
	BackCollectorNumber    string
	DoubleSidedMarketPrice *PriceRecord
	IsDoubleSided          bool
}

func (v TokenValuation) hasBack() bool {
	return v.IsDoubleSided && v.BackSide != nil
}

// MoreValuableSide reports which face has the higher best price.
// A non-nil strategy decides alone. Without one, single-faced tokens are always front,
// equal prices favor the front, and ok is false when neither face has a price.
func (v TokenValuation) MoreValuableSide(strategy ValuationStrategy, analyzer any) (TokenSide, bool) {
	if strategy != nil {
		return strategy.MoreValuableSide(v, analyzer)
	}

	if !v.hasBack() {
		return TokenSideFront, true
	}

	front, frontOK := bestPriceOf(v.FrontPrice)
	back, backOK := bestPriceOf(v.BackPrice)

	switch {
	case !frontOK && !backOK:
		return "", false
	case !frontOK:
		return TokenSideBack, true
	case !backOK:
		return TokenSideFront, true
	case back.GreaterThan(front):
		return TokenSideBack, true
	default:
		return TokenSideFront, true
	}
}

// ValueDifference returns the absolute gap between the back and front best prices.
// A non-nil strategy decides alone. Without one, ok is false unless the token is
// double-sided with a back face and both faces are priced.
func (v TokenValuation) ValueDifference(strategy ValuationStrategy, analyzer any) (decimal.Decimal, bool) {
	if strategy != nil {
		return strategy.ValueDifference(v, analyzer)
	}

	if !v.hasBack() {
		return decimal.Decimal{}, false
	}

	front, frontOK := bestPriceOf(v.FrontPrice)
	back, backOK := bestPriceOf(v.BackPrice)
	if !frontOK || !backOK {
		return decimal.Decimal{}, false
	}
	return back.Sub(front).Abs(), true
}

// DoubleSidedUUID returns the SHA-1 hex digest of both face UUIDs sorted and joined with "-".
// The result does not depend on which face is front.
func (v TokenValuation) DoubleSidedUUID() (string, bool) {
	if !v.hasBack() || v.FrontSide.UUID == "" || v.BackSide.UUID == "" {
		return "", false
	}

	uuids := []string{v.FrontSide.UUID, v.BackSide.UUID}
	slices.Sort(uuids)

	sum := sha1.Sum([]byte(strings.Join(uuids, "-")))
	return hex.EncodeToString(sum[:]), true
}
