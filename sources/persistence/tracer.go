package persistence

import (
	"fmt"

	"parley/sources/tracing"
)

type gormtracer struct {
	logger *tracing.Logger
}

func (w *gormtracer) Printf(format string, args ...interface{}) {
	w.logger.D(fmt.Sprintf(format, args...))
}
