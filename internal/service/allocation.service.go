package service

import (
	"context"
	"sort"
	"stockfolio/internal"
	"stockfolio/internal/domain"
	"stockfolio/internal/repository"
)

const unknownAssetClass = "UNKNOWN"

// AllocationService aggregates current market value by asset class.
type AllocationService interface {
	GetAssetAllocation(ctx context.Context) ([]domain.AllocationSlice, error)
}

func NewAllocationService(
	holdingRepository repository.StockHoldingRepository,
	alpacaRepository repository.AlpacaRepository,
) AllocationService {
	return allocationServiceHandler{
		HoldingRepository: holdingRepository,
		AlpacaRepository:  alpacaRepository,
	}
}

type allocationServiceHandler struct {
	HoldingRepository repository.StockHoldingRepository
	AlpacaRepository  repository.AlpacaRepository
}

func (h allocationServiceHandler) GetAssetAllocation(ctx context.Context) ([]domain.AllocationSlice, error) {
	holdings, err := h.HoldingRepository.List(repository.StockHoldingListFilter{})
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return []domain.AllocationSlice{}, nil
	}

	quotes, err := h.AlpacaRepository.GetLatestPrices(ctx, distinctSymbols(holdings))
	if err != nil {
		return nil, err
	}

	valueByClass := map[string]float64{}
	grandTotal := float64(0)
	for _, holding := range holdings {
		quote, ok := quotes[holding.Symbol]
		if !ok {
			// unpriceable holdings degrade allocation accuracy but never
			// fail the request
			continue
		}
		marketValue := holding.Quantity * quote.InexactFloat64()

		assetClass := holding.AssetClass
		if assetClass == "" {
			assetClass = unknownAssetClass
		}
		valueByClass[assetClass] += marketValue
		grandTotal += marketValue
	}

	if grandTotal == 0 {
		return []domain.AllocationSlice{}, nil
	}

	out := []domain.AllocationSlice{}
	for assetClass, totalValue := range valueByClass {
		out = append(out, domain.AllocationSlice{
			AssetClass: assetClass,
			TotalValue: internal.Round2(totalValue),
			Percentage: internal.Round2(totalValue / grandTotal * 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AssetClass < out[j].AssetClass
	})

	return out, nil
}
