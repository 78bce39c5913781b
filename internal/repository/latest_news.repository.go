package repository

import (
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	. "stockfolio/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
)

type LatestNewsRepository interface {
	List(symbols []string) ([]model.LatestNews, error)
	Upsert(article model.LatestNews) error
}

func NewLatestNewsRepository(db *sql.DB) LatestNewsRepository {
	return latestNewsRepositoryHandler{Db: db}
}

type latestNewsRepositoryHandler struct {
	Db *sql.DB
}

func (h latestNewsRepositoryHandler) List(symbols []string) ([]model.LatestNews, error) {
	if len(symbols) == 0 {
		return []model.LatestNews{}, nil
	}

	symbolExpressions := []Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, String(s))
	}

	query := LatestNews.
		SELECT(LatestNews.AllColumns).
		WHERE(LatestNews.Symbol.IN(symbolExpressions...)).
		ORDER_BY(LatestNews.PublishedAt.DESC())

	result := []model.LatestNews{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached news: %w", err)
	}

	return result, nil
}

func (h latestNewsRepositoryHandler) Upsert(article model.LatestNews) error {
	query := LatestNews.
		INSERT(LatestNews.AllColumns).
		MODEL(article).
		ON_CONFLICT(LatestNews.Symbol).
		DO_UPDATE(
			SET(
				LatestNews.Title.SET(LatestNews.EXCLUDED.Title),
				LatestNews.URL.SET(LatestNews.EXCLUDED.URL),
				LatestNews.PublishedAt.SET(LatestNews.EXCLUDED.PublishedAt),
				LatestNews.UpdatedAt.SET(LatestNews.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert news for %s: %w", article.Symbol, err)
	}

	return nil
}
