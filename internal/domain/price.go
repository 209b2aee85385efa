package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Price source labels reported by BestPrice, in candidate order.
const (
	SourceMarket      = "Market"
	SourceMedian      = "Median"
	SourceTCGPlayer   = "TCGPlayer"
	SourceCardKingdom = "Card Kingdom"
	SourceCardMarket  = "Card Market"
)

// PriceFields carries raw quotations for one face before validation.
// Numeric fields accept Go numbers, json.Number and decimals; anything else is treated as absent.
type PriceFields struct {
	MarketPrice          any
	MedianPrice          any
	LowPrice             any
	HighPrice            any
	TCGPlayer            any
	CardKingdom          any
	CardMarket           any
	TCGPlayerMarketPrice any
	Source               string // canonical label override
}

// PriceRecord holds validated price quotations for one face of a token.
// The zero value is a record with no prices.
type PriceRecord struct {
	marketPrice          decimal.NullDecimal
	medianPrice          decimal.NullDecimal
	lowPrice             decimal.NullDecimal
	highPrice            decimal.NullDecimal
	tcgplayer            decimal.NullDecimal
	cardkingdom          decimal.NullDecimal
	cardmarket           decimal.NullDecimal
	tcgplayerMarketPrice decimal.NullDecimal
	source               string
}

// PriceQuote is a selected price and the label of the source it came from.
type PriceQuote struct {
	Price  decimal.Decimal `json:"price"`
	Source string          `json:"source"`
}

// NewPriceRecord validates fields once: negative or non-numeric quotations become absent.
func NewPriceRecord(f PriceFields) PriceRecord {
	return PriceRecord{
		marketPrice:          nonNegative(f.MarketPrice),
		medianPrice:          nonNegative(f.MedianPrice),
		lowPrice:             nonNegative(f.LowPrice),
		highPrice:            nonNegative(f.HighPrice),
		tcgplayer:            nonNegative(f.TCGPlayer),
		cardkingdom:          nonNegative(f.CardKingdom),
		cardmarket:           nonNegative(f.CardMarket),
		tcgplayerMarketPrice: toDecimal(f.TCGPlayerMarketPrice),
		source:               f.Source,
	}
}

// MarketPrice returns the market quotation; Valid is false when absent.
func (p PriceRecord) MarketPrice() decimal.NullDecimal {
	return p.marketPrice
}

// MedianPrice returns the median quotation.
func (p PriceRecord) MedianPrice() decimal.NullDecimal {
	return p.medianPrice
}

// LowPrice returns the low quotation. It is never a best-price candidate.
func (p PriceRecord) LowPrice() decimal.NullDecimal {
	return p.lowPrice
}

// HighPrice returns the high quotation. It is never a best-price candidate.
func (p PriceRecord) HighPrice() decimal.NullDecimal {
	return p.highPrice
}

// TCGPlayer returns the TCGPlayer quotation.
func (p PriceRecord) TCGPlayer() decimal.NullDecimal {
	return p.tcgplayer
}

// CardKingdom returns the Card Kingdom quotation.
func (p PriceRecord) CardKingdom() decimal.NullDecimal {
	return p.cardkingdom
}

// CardMarket returns the Card Market quotation.
func (p PriceRecord) CardMarket() decimal.NullDecimal {
	return p.cardmarket
}

// TCGPlayerMarketPrice returns the TCGPlayer market quotation, stored but never a candidate.
func (p PriceRecord) TCGPlayerMarketPrice() decimal.NullDecimal {
	return p.tcgplayerMarketPrice
}

// Source returns the canonical label override, or "" when none was given.
func (p PriceRecord) Source() string {
	return p.source
}

type priceCandidate struct {
	price decimal.NullDecimal
	label string
}

// BestPrice returns the highest quotation among market, median, TCGPlayer, Card Kingdom
// and Card Market. Ties go to the earliest of those. Low and high prices are not candidates.
// When a source override is set it replaces the label of the selected price.
func (p PriceRecord) BestPrice() (PriceQuote, bool) {
	candidates := lo.Filter([]priceCandidate{
		{p.marketPrice, SourceMarket},
		{p.medianPrice, SourceMedian},
		{p.tcgplayer, SourceTCGPlayer},
		{p.cardkingdom, SourceCardKingdom},
		{p.cardmarket, SourceCardMarket},
	}, func(c priceCandidate, _ int) bool {
		return c.price.Valid
	})
	if len(candidates) == 0 {
		return PriceQuote{}, false
	}

	// MaxBy keeps the first element on equal values.
	best := lo.MaxBy(candidates, func(a, b priceCandidate) bool {
		return a.price.Decimal.GreaterThan(b.price.Decimal)
	})

	label := best.label
	if p.source != "" {
		label = p.source
	}
	return PriceQuote{Price: best.price.Decimal, Source: label}, true
}

// bestPriceOf returns the best price of an optional record.
func bestPriceOf(p *PriceRecord) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Decimal{}, false
	}
	q, ok := p.BestPrice()
	return q.Price, ok
}
