package rendering

import "go.uber.org/fx"

var Module = fx.Module("rendering", fx.Provide(NewRendererConfig, NewRenderer))
