package throttler

import (
	"time"

	"parley/sources/platform"
)

type ThrottlerConfig struct {
	Limit time.Duration
}

type GuardConfig struct {
	RepeatLimit  int
	RepeatWindow time.Duration
}

func NewThrottlerConfig() *ThrottlerConfig {
	return &ThrottlerConfig{Limit: platform.GetAsDuration("REQUEST_THROTTLE_LIMIT", "3s")}
}

func NewGuardConfig() *GuardConfig {
	return &GuardConfig{
		RepeatLimit:  platform.GetAsInt("GUARD_REPEAT_LIMIT", 4),
		RepeatWindow: platform.GetAsDuration("GUARD_REPEAT_WINDOW", "10m"),
	}
}
