package network

import (
	"time"

	"parley/sources/platform"
)

type ProxyConfig struct {
	Enabled      bool
	ProxyAddress string
	ProxyUser    string
	ProxyPass    string
	Timeout      time.Duration
}

func NewProxyConfig() *ProxyConfig {
	return &ProxyConfig{
		Enabled:      platform.GetAsBool("PROXY_ENABLED", false),
		ProxyAddress: platform.Get("PROXY_ADDRESS", "localhost:9050"),
		ProxyUser:    platform.Get("PROXY_USER", ""),
		ProxyPass:    platform.Get("PROXY_PASS", ""),
		Timeout:      platform.GetAsDuration("HTTP_CLIENT_TIMEOUT", "10m"),
	}
}
