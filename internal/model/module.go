package model

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/avdeyev/churnscope/internal/config"
)

// Module loads the classifier artifact at startup and provides the engine.
// A load failure is fatal: the fx graph refuses to start without a model.
var Module = fx.Options(
	fx.Provide(newArtifact),
	fx.Provide(NewEngine),
)

type artifactParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newArtifact(p artifactParams) (*Artifact, error) {
	artifact, err := Load(p.Config.ModelPath)
	if err != nil {
		p.Logger.Error("cannot load model artifact, refusing to start",
			slog.String("path", p.Config.ModelPath),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	p.Logger.Info("model artifact loaded",
		slog.String("path", p.Config.ModelPath),
		slog.String("version", artifact.Version),
	)
	return artifact, nil
}
