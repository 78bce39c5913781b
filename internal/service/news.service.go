package service

import (
	"context"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"time"

	"github.com/mmcdole/gofeed"
)

const newsFeedUrlFormat = "https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US"

// NewsService returns cached latest-news rows for the held symbols and
// refreshes the cache in the background. The refresh is fire-and-forget:
// it is never awaited and its result never reaches the request path.
type NewsService interface {
	GetNewsForHoldings(ctx context.Context) ([]model.LatestNews, error)
}

func NewNewsService(
	holdingRepository repository.StockHoldingRepository,
	newsRepository repository.LatestNewsRepository,
) NewsService {
	return newsServiceHandler{
		HoldingRepository: holdingRepository,
		NewsRepository:    newsRepository,
		FeedParser:        gofeed.NewParser(),
		FeedUrlFormat:     newsFeedUrlFormat,
	}
}

type newsServiceHandler struct {
	HoldingRepository repository.StockHoldingRepository
	NewsRepository    repository.LatestNewsRepository
	FeedParser        *gofeed.Parser
	FeedUrlFormat     string
}

func (h newsServiceHandler) GetNewsForHoldings(ctx context.Context) ([]model.LatestNews, error) {
	holdings, err := h.HoldingRepository.List(repository.StockHoldingListFilter{})
	if err != nil {
		return nil, err
	}
	symbols := distinctSymbols(holdings)

	cached, err := h.NewsRepository.List(symbols)
	if err != nil {
		return nil, err
	}

	go h.refreshNews(symbols)

	// the caller gets whatever the cache holds right now, empty included
	return cached, nil
}

func (h newsServiceHandler) refreshNews(symbols []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	log := logger.FromContext(ctx)

	for _, symbol := range symbols {
		article, err := h.fetchLatestArticle(ctx, symbol)
		if err != nil {
			log.Warnf("failed to refresh news for %s: %s", symbol, err.Error())
			continue
		}
		if article == nil {
			continue
		}
		if err := h.NewsRepository.Upsert(*article); err != nil {
			log.Warnf("failed to store news for %s: %s", symbol, err.Error())
		}
	}
}

func (h newsServiceHandler) fetchLatestArticle(ctx context.Context, symbol string) (*model.LatestNews, error) {
	feed, err := h.FeedParser.ParseURLWithContext(fmt.Sprintf(h.FeedUrlFormat, symbol), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed for %s: %w", symbol, err)
	}
	if len(feed.Items) == 0 {
		return nil, nil
	}

	latest := feed.Items[0]
	article := &model.LatestNews{
		Symbol:    symbol,
		Title:     latest.Title,
		URL:       latest.Link,
		UpdatedAt: time.Now().UTC(),
	}
	if latest.PublishedParsed != nil {
		published := latest.PublishedParsed.UTC()
		article.PublishedAt = &published
	}

	return article, nil
}
