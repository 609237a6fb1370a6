package rendering

import (
	"parley/sources/platform"
)

type RendererConfig struct {
	ChunkSize int
}

func NewRendererConfig() *RendererConfig {
	size := platform.GetAsInt("RENDER_CHUNK_SIZE", 4096)
	if size <= 0 {
		size = 4096
	}
	return &RendererConfig{ChunkSize: size}
}
