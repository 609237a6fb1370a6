package network

import (
	"parley/sources/tracing"

	"golang.org/x/net/proxy"
)

// NewProxyDialer prepares the outbound dialer. With proxying disabled it
// falls through to direct connections, otherwise all AI traffic leaves via
// the configured SOCKS5 endpoint.
func NewProxyDialer(config *ProxyConfig, log *tracing.Logger) proxy.Dialer {
	if !config.Enabled {
		log.I("Proxying disabled, dialing directly")
		return proxy.Direct
	}

	var auth *proxy.Auth
	if config.ProxyUser != "" {
		auth = &proxy.Auth{User: config.ProxyUser, Password: config.ProxyPass}
	}

	dialer, err := proxy.SOCKS5("tcp", config.ProxyAddress, auth, proxy.Direct)
	if err != nil {
		log.F("Failed to create proxy dialer", tracing.InnerError, err)
	}

	log.I("Proxy dialer initialized", tracing.ProxyUrl, config.ProxyAddress)
	return dialer
}
