package external

import (
	"parley/sources/platform"
)

type OutsidersConfig struct {
	StartupPort            int
	SystemMetricsPort      int
	ApplicationMetricsPort int
}

func NewOutsidersConfig() *OutsidersConfig {
	return &OutsidersConfig{
		StartupPort:            platform.GetAsInt("OUTSIDERS_STARTUP_PORT", 10000),
		SystemMetricsPort:      platform.GetAsInt("OUTSIDERS_SYSTEM_METRICS_PORT", 10001),
		ApplicationMetricsPort: platform.GetAsInt("OUTSIDERS_APPLICATION_METRICS_PORT", 10002),
	}
}
