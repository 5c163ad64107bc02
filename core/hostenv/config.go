package hostenv

// Config holds configuration for the host capabilities.
type Config struct {
	// IPLookupURL is queried for the caller's public IPv4 address.
	// The response must be JSON with an "ipAddress" field.
	IPLookupURL string `mapstructure:"ip_lookup_url" default:"https://api.db-ip.com/v2/free/self"`
	// IPLookupTimeoutSeconds bounds a single lookup request.
	IPLookupTimeoutSeconds int `mapstructure:"ip_lookup_timeout_seconds" default:"5"`
	// IPCacheTTLSeconds is how long a successful lookup is reused. Zero disables caching.
	IPCacheTTLSeconds int `mapstructure:"ip_cache_ttl_seconds" default:"60"`
}
