package appraisal

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mtlprog/tokenvalue/internal/domain"
)

// Totals aggregates a batch of appraisals.
type Totals struct {
	Count        int             `json:"count"`
	DoubleSided  int             `json:"doubleSided"`
	Undetermined int             `json:"undetermined"`
	TotalValue   decimal.Decimal `json:"totalValue"`
}

// CalculateTotals sums the best price of each token's more valuable side.
// Tokens whose chosen side has no price contribute nothing.
func CalculateTotals(appraisals []Appraisal) Totals {
	total := lo.Reduce(appraisals, func(acc decimal.Decimal, a Appraisal, _ int) decimal.Decimal {
		if q := a.chosenQuote(); q != nil {
			return acc.Add(q.Price)
		}
		return acc
	}, decimal.Zero)

	return Totals{
		Count: len(appraisals),
		DoubleSided: lo.CountBy(appraisals, func(a Appraisal) bool {
			return a.IsDoubleSided
		}),
		Undetermined: lo.CountBy(appraisals, func(a Appraisal) bool {
			return a.MoreValuableSide == nil
		}),
		TotalValue: total,
	}
}

func (a Appraisal) chosenQuote() *Quote {
	if a.MoreValuableSide == nil {
		return nil
	}
	switch *a.MoreValuableSide {
	case domain.TokenSideFront:
		return a.Front
	case domain.TokenSideBack:
		return a.Back
	default:
		return nil
	}
}
