package di

import (
	"go.uber.org/fx"

	"github.com/avdeyev/churnscope/internal/app"
	"github.com/avdeyev/churnscope/internal/config"
	"github.com/avdeyev/churnscope/internal/logger"
	"github.com/avdeyev/churnscope/internal/model"
	"github.com/avdeyev/churnscope/internal/pkg/auth"
	"github.com/avdeyev/churnscope/internal/server/http/handlers"
	"github.com/avdeyev/churnscope/internal/server/http/router"
	"github.com/avdeyev/churnscope/internal/storage/postgres"
	"github.com/avdeyev/churnscope/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		model.Module,
		usecase.Module,
		fx.Provide(func(f *app.ChurnFacade) handlers.ChurnFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
