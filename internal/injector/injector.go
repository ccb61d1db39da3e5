//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/physkit/internal/core/observability/log"
)

func InitializeComponents(cfg log.Config) (*Components, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
