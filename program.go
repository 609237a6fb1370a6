package main

import (
	"context"

	"parley/sources/artificial"
	"parley/sources/external"
	"parley/sources/features"
	"parley/sources/metrics"
	"parley/sources/network"
	"parley/sources/persistence"
	"parley/sources/rendering"
	"parley/sources/repository"
	"parley/sources/telegram"
	"parley/sources/throttler"
	"parley/sources/tracing"

	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	fx.New(
		tracing.Module,
		metrics.Module,
		external.Module,
		network.Module,
		persistence.Module,
		repository.Module,
		throttler.Module,
		features.Module,
		artificial.Module,
		rendering.Module,
		telegram.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Parley started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Parley stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
