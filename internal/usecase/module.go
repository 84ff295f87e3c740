package usecase

import (
	"go.uber.org/fx"

	"github.com/avdeyev/churnscope/internal/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(NewAuthUseCase),
	fx.Provide(func(engine *model.Engine) *PredictUseCase { return NewPredictUseCase(engine) }),
)
