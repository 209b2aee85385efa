package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/mtlprog/tokenvalue/internal/domain"
)

var (
	// ErrInvalidPayload is returned for input that is not valid JSON of the expected shape.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrMissingName is returned for a face without a name.
	ErrMissingName = errors.New("token name is required")
)

// priceKeys maps payload keys to the PriceFields they populate.
var priceKeys = []struct {
	key string
	set func(*domain.PriceFields, any)
}{
	{"market_price", func(f *domain.PriceFields, v any) { f.MarketPrice = v }},
	{"median_price", func(f *domain.PriceFields, v any) { f.MedianPrice = v }},
	{"low_price", func(f *domain.PriceFields, v any) { f.LowPrice = v }},
	{"high_price", func(f *domain.PriceFields, v any) { f.HighPrice = v }},
	{"tcgplayer", func(f *domain.PriceFields, v any) { f.TCGPlayer = v }},
	{"cardkingdom", func(f *domain.PriceFields, v any) { f.CardKingdom = v }},
	{"cardmarket", func(f *domain.PriceFields, v any) { f.CardMarket = v }},
	{"tcgplayer_market_price", func(f *domain.PriceFields, v any) { f.TCGPlayerMarketPrice = v }},
}

// ParsePriceRecord decodes a price quotation object into a validated PriceRecord.
// Quotations that are not JSON numbers or are negative end up absent.
func ParsePriceRecord(raw []byte) (domain.PriceRecord, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return domain.PriceRecord{}, fmt.Errorf("parsing price record: %w", err)
	}
	return priceRecordFrom(obj), nil
}

// ParseTokenIdentity decodes a catalog face object. A missing rarity defaults to "Token".
func ParseTokenIdentity(raw []byte) (domain.TokenIdentity, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return domain.TokenIdentity{}, fmt.Errorf("parsing token identity: %w", err)
	}
	return tokenIdentityFrom(obj)
}

// ParseTokenValuation decodes a front/back valuation entry.
func ParseTokenValuation(raw []byte) (domain.TokenValuation, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return domain.TokenValuation{}, fmt.Errorf("parsing token valuation: %w", err)
	}
	return tokenValuationFrom(obj)
}

// ParseTokenValuations decodes an array of valuation entries, skipping entries that fail to parse.
func ParseTokenValuations(raw []byte) ([]domain.TokenValuation, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("parsing token valuations: %w", ErrInvalidPayload)
	}
	arr := gjson.ParseBytes(raw)
	if !arr.IsArray() {
		return nil, fmt.Errorf("parsing token valuations: expected array: %w", ErrInvalidPayload)
	}

	var valuations []domain.TokenValuation
	for i, entry := range arr.Array() {
		if !entry.IsObject() {
			slog.Warn("skipping non-object valuation entry", "index", i)
			continue
		}
		v, err := tokenValuationFrom(entry)
		if err != nil {
			slog.Warn("skipping unparseable valuation entry", "index", i, "error", err)
			continue
		}
		valuations = append(valuations, v)
	}
	return valuations, nil
}

func parseObject(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, ErrInvalidPayload
	}
	obj := gjson.ParseBytes(raw)
	if !obj.IsObject() {
		return gjson.Result{}, fmt.Errorf("expected object: %w", ErrInvalidPayload)
	}
	return obj, nil
}

func priceRecordFrom(obj gjson.Result) domain.PriceRecord {
	var fields domain.PriceFields
	for _, pk := range priceKeys {
		pk.set(&fields, quotation(obj, pk.key))
	}
	fields.Source = stringField(obj, "source")
	return domain.NewPriceRecord(fields)
}

// quotation returns a JSON number as json.Number so the exact decimal text survives.
// Other JSON types are passed on as-is and normalize to absent.
func quotation(obj gjson.Result, key string) any {
	r := obj.Get(key)
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return nil
	case r.Type == gjson.Number:
		return json.Number(r.Raw)
	default:
		slog.Debug("dropping non-numeric quotation", "key", key, "value", r.Raw)
		return r.Value()
	}
}

func optionalPriceRecord(obj gjson.Result, key string) *domain.PriceRecord {
	r := obj.Get(key)
	if !r.IsObject() {
		return nil
	}
	p := priceRecordFrom(r)
	return &p
}

func tokenIdentityFrom(obj gjson.Result) (domain.TokenIdentity, error) {
	name := stringField(obj, "name")
	if name == "" {
		return domain.TokenIdentity{}, ErrMissingName
	}

	tok := domain.NewTokenIdentity(name)
	tok.UUID = stringField(obj, "uuid")
	tok.SetCode = stringField(obj, "set_code")
	tok.CollectorNumber = stringField(obj, "collector_number")
	tok.Power = stringField(obj, "power")
	tok.Toughness = stringField(obj, "toughness")
	tok.Artist = stringField(obj, "artist")
	tok.ImageURI = stringField(obj, "image_uri")
	if rarity := stringField(obj, "rarity"); rarity != "" {
		tok.Rarity = rarity
	}

	if colors := obj.Get("colors"); colors.IsArray() {
		tok.Colors = lo.FilterMap(colors.Array(), func(c gjson.Result, _ int) (string, bool) {
			return c.Str, c.Type == gjson.String
		})
	}

	return tok, nil
}

func tokenValuationFrom(obj gjson.Result) (domain.TokenValuation, error) {
	front := obj.Get("front_side")
	if !front.IsObject() {
		return domain.TokenValuation{}, fmt.Errorf("front_side: %w", ErrInvalidPayload)
	}
	frontSide, err := tokenIdentityFrom(front)
	if err != nil {
		return domain.TokenValuation{}, fmt.Errorf("front_side: %w", err)
	}

	v := domain.TokenValuation{
		FrontSide:              frontSide,
		FrontPrice:             optionalPriceRecord(obj, "front_price"),
		BackPrice:              optionalPriceRecord(obj, "back_price"),
		DoubleSidedMarketPrice: optionalPriceRecord(obj, "double_sided_market_price"),
		FrontCollectorNumber:   stringField(obj, "front_collector_number"),
		BackCollectorNumber:    stringField(obj, "back_collector_number"),
		IsDoubleSided:          obj.Get("is_double_sided").Type == gjson.True,
	}

	if back := obj.Get("back_side"); back.IsObject() {
		backSide, err := tokenIdentityFrom(back)
		if err != nil {
			return domain.TokenValuation{}, fmt.Errorf("back_side: %w", err)
		}
		v.BackSide = &backSide
	}

	return v, nil
}

// stringField reads a scalar as text; numbers keep their raw form ("7" for collector 7).
func stringField(obj gjson.Result, key string) string {
	r := obj.Get(key)
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}
