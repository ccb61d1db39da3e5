package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/physkit/internal/core/observability/log"
	"github.com/zeusync/physkit/internal/scenario"
)

// Components is everything the CLI needs for one run.
type Components struct {
	Logger    *log.Logger
	Evaluator *scenario.Evaluator
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	scenario.NewEvaluator,
	wire.Struct(new(Components), "*"),
)

func ProvideLogger(cfg log.Config) (*log.Logger, error) {
	return log.NewWithConfig(cfg)
}
