package service

import (
	"context"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"time"
)

// IndexService fetches live quotes for the configured market indices.
type IndexService interface {
	GetCommonIndexes(ctx context.Context) ([]domain.IndexQuote, error)
}

func NewIndexService(fmpRepository repository.FmpRepository, config internal.PortfolioConfig) IndexService {
	return indexServiceHandler{
		FmpRepository: fmpRepository,
		Config:        config,
	}
}

type indexServiceHandler struct {
	FmpRepository repository.FmpRepository
	Config        internal.PortfolioConfig
}

func (h indexServiceHandler) GetCommonIndexes(ctx context.Context) ([]domain.IndexQuote, error) {
	log := logger.FromContext(ctx)

	out := []domain.IndexQuote{}
	for i, symbol := range h.Config.IndexSymbols {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(h.Config.RequestInterval):
			}
		}

		quote, err := h.FmpRepository.GetQuote(ctx, symbol)
		if err != nil {
			// a failed index is skipped, the rest still return
			log.Warnf("failed to fetch index quote for %s: %s", symbol, err.Error())
			continue
		}
		out = append(out, domain.IndexQuote{
			Symbol:           quote.Symbol,
			Name:             quote.Name,
			Price:            internal.Round2(quote.Price),
			ChangePercentage: internal.Round4(quote.ChangePercentage),
		})
	}

	return out, nil
}
