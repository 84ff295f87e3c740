package handlers

import (
	"context"

	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) error
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (string, error)
}

// PredictFacade encapsulates scoring operations exposed via HTTP.
type PredictFacade interface {
	PredictOnline(ctx context.Context, record model.CustomerRecord) (*usecase.OnlineVerdict, error)
	PredictBatch(ctx context.Context, rows []map[string]string) (*usecase.BatchOutcome, error)
	ModelVersion() string
	StoreHealth(ctx context.Context) error
}

// ChurnFacade aggregates the full set of operations used across handlers.
type ChurnFacade interface {
	AuthFacade
	PredictFacade
}
