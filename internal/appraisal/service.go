package appraisal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mtlprog/tokenvalue/internal/config"
	"github.com/mtlprog/tokenvalue/internal/domain"
)

// Quote is a rounded best price and its source label.
type Quote struct {
	Price  decimal.Decimal `json:"price"`
	Source string          `json:"source"`
}

// Appraisal is the outcome of the valuation queries for one token.
// Nil fields mean the query had no answer.
type Appraisal struct {
	Name             string              `json:"name"`
	IsDoubleSided    bool                `json:"isDoubleSided"`
	DoubleSidedUUID  *string             `json:"doubleSidedUuid,omitempty"`
	Front            *Quote              `json:"front,omitempty"`
	Back             *Quote              `json:"back,omitempty"`
	Combined         *Quote              `json:"combined,omitempty"`
	MoreValuableSide *domain.TokenSide   `json:"moreValuableSide"`
	ValueDifference  decimal.NullDecimal `json:"valueDifference"`
}

// Service appraises token valuations with an optional injected strategy.
type Service struct {
	strategy  domain.ValuationStrategy
	precision int32
	workers   int
}

// NewService creates an appraisal Service. A nil strategy selects the built-in comparison.
func NewService(strategy domain.ValuationStrategy, precision int32, workers int) *Service {
	return &Service{
		strategy:  strategy,
		precision: precision,
		workers:   max(workers, 1),
	}
}

// NewServiceFromConfig creates a Service using precision and concurrency from cfg.
func NewServiceFromConfig(cfg config.Config, strategy domain.ValuationStrategy) *Service {
	return NewService(strategy, int32(cfg.PricePrecision), cfg.AppraisalWorkers)
}

// Appraise runs the side comparison, value difference and identifier queries for v.
func (s *Service) Appraise(v domain.TokenValuation, analyzer any) Appraisal {
	a := Appraisal{
		Name:          v.FrontSide.Name,
		IsDoubleSided: v.IsDoubleSided,
		Front:         s.quote(v.FrontPrice),
	}

	if v.IsDoubleSided {
		a.Back = s.quote(v.BackPrice)
		a.Combined = s.quote(v.DoubleSidedMarketPrice)
	}

	if id, ok := v.DoubleSidedUUID(); ok {
		a.DoubleSidedUUID = &id
	}

	if side, ok := v.MoreValuableSide(s.strategy, analyzer); ok {
		a.MoreValuableSide = &side
	} else {
		slog.Debug("more valuable side undetermined", "token", v.FrontSide.Name)
	}

	if diff, ok := v.ValueDifference(s.strategy, analyzer); ok {
		a.ValueDifference = decimal.NewNullDecimal(diff.Round(s.precision))
	}

	return a
}

// AppraiseAll appraises valuations concurrently and returns results in input order.
func (s *Service) AppraiseAll(ctx context.Context, valuations []domain.TokenValuation, analyzer any) ([]Appraisal, error) {
	results := make([]Appraisal, len(valuations))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, v := range valuations {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.Appraise(v, analyzer)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("appraising %d valuations: %w", len(valuations), err)
	}

	slog.Info("appraisal batch completed", "count", len(results))
	return results, nil
}

func (s *Service) quote(p *domain.PriceRecord) *Quote {
	if p == nil {
		return nil
	}
	best, ok := p.BestPrice()
	if !ok {
		return nil
	}
	return &Quote{Price: best.Price.Round(s.precision), Source: best.Source}
}
