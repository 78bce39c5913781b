package repository

import (
	"database/sql"
	"fmt"
	"stockfolio/internal/db/models/postgres/public/model"
	. "stockfolio/internal/db/models/postgres/public/table"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db *sql.DB, req model.APIRequest) (*model.APIRequest, error)
	Update(db *sql.DB, req model.APIRequest) error
}

func NewApiRequestRepository() ApiRequestRepository {
	return apiRequestRepositoryHandler{}
}

type apiRequestRepositoryHandler struct{}

func (h apiRequestRepositoryHandler) Add(db *sql.DB, req model.APIRequest) (*model.APIRequest, error) {
	req.APIRequestID = uuid.New()

	query := APIRequest.
		INSERT(APIRequest.AllColumns).
		MODEL(req).
		RETURNING(APIRequest.AllColumns)

	out := model.APIRequest{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to add api request: %w", err)
	}

	return &out, nil
}

func (h apiRequestRepositoryHandler) Update(db *sql.DB, req model.APIRequest) error {
	query := APIRequest.
		UPDATE(APIRequest.MutableColumns).
		MODEL(req).
		WHERE(APIRequest.APIRequestID.EQ(UUID(req.APIRequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
