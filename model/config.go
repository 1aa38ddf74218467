package model

// --- SYSTEM CONFIG ---
// EnvConfig holds sensitive environment settings
// @Description Private configuration (usually not exposed in public endpoints)
type EnvConfig struct {
	Port            string      `json:"port"`
	Environment     string      `json:"environment"`
	MongoUser       string      `json:"mongoUser"`
	MongoPassword   string      `json:"mongoPassword"`
	AlphaVantageKey string      `json:"alphaVantageKey"`
	FrontendUrls    []string    `json:"frontendUrls"`
	Fetch           FetchConfig `json:"fetch"`
	DebugMode       bool        `json:"debug"`
	RateLimiter     bool        `json:"rateLimiter"`
}

// FetchConfig tunes the fetch pipeline. Zero values pick up defaults at
// load time.
type FetchConfig struct {
	MaxRetries      int `json:"maxRetries"`
	BackoffSeconds  int `json:"backoffSeconds"`
	TimeoutSeconds  int `json:"timeoutSeconds"`
	CacheTTLMinutes int `json:"cacheTtlMinutes"`
	MaxConcurrent   int `json:"maxConcurrent"`
}

// RuntimeConfig is the hot-swappable subset behind the admin endpoints.
type RuntimeConfig struct {
	DebugMode   bool `json:"debug" mapstructure:"debug"`
	RateLimiter bool `json:"rateLimiter" mapstructure:"rateLimiter"`
}

// ActiveConfig is the redacted operator view of the running setup. The
// secondary credential itself never leaves the process.
type ActiveConfig struct {
	Environment      string        `json:"environment"`
	SecondaryEnabled bool          `json:"secondaryEnabled"`
	Fetch            FetchConfig   `json:"fetch"`
	Runtime          RuntimeConfig `json:"runtime"`
}

// ConfigResponse wraps ActiveConfig for Huma.
type ConfigResponse struct {
	Body ActiveConfig
}
