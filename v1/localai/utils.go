package localai

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// normalizeBaseURL brings the configured base URL into the form the SDK
// expects: no trailing slash, /v1 suffix present exactly once.
func normalizeBaseURL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	return base
}

// parseProxyURL parses the configured proxy URL and rejects values the
// transport could not use.
func parseProxyURL(proxy string) (*url.URL, error) {
	u, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidProxy, proxy, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, proxy)
	}
	return u, nil
}

// newHTTPClient builds the HTTP client shared by all requests to the
// server. A dedicated transport is used so the proxy setting never leaks
// into http.DefaultTransport.
func newHTTPClient(cfg *Config) (*http.Client, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	if cfg.Proxy != "" {
		proxyURL, err := parseProxyURL(cfg.Proxy)
		if err != nil {
			return nil, err
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	return client, nil
}
