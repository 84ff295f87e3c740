package app

import (
	"context"

	"github.com/avdeyev/churnscope/internal/domain/model"
	"github.com/avdeyev/churnscope/internal/usecase"
)

// HealthChecker reports whether the credential store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ChurnFacade aggregates the use cases behind a single surface for the HTTP
// layer.
type ChurnFacade struct {
	auth    *usecase.AuthUseCase
	predict *usecase.PredictUseCase
	health  HealthChecker
}

// NewChurnFacade constructs ChurnFacade.
func NewChurnFacade(auth *usecase.AuthUseCase, predict *usecase.PredictUseCase, health HealthChecker) *ChurnFacade {
	return &ChurnFacade{auth: auth, predict: predict, health: health}
}

func (f *ChurnFacade) Register(ctx context.Context, login, password string) error {
	_, err := f.auth.Register(ctx, login, password)
	return err
}

func (f *ChurnFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *ChurnFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *ChurnFacade) PredictOnline(ctx context.Context, record model.CustomerRecord) (*usecase.OnlineVerdict, error) {
	return f.predict.Online(record)
}

func (f *ChurnFacade) PredictBatch(ctx context.Context, rows []map[string]string) (*usecase.BatchOutcome, error) {
	return f.predict.Batch(rows)
}

func (f *ChurnFacade) ModelVersion() string {
	return f.predict.ModelVersion()
}

func (f *ChurnFacade) StoreHealth(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
