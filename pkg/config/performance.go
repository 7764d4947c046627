package config

// Performance carries advisory tuning knobs for callers that host the
// engines. The engines themselves do not consume these: rule-set caching is
// always on and unbounded (the key space is the set of configured rule
// combinations, which is small), and metrics are the caller's concern.
type Performance struct {
	EnableCaching bool `env:"PERF_ENABLE_CACHING" envDefault:"true"`
	MaxCacheSize  int  `env:"PERF_MAX_CACHE_SIZE" envDefault:"1000"`
	EnableMetrics bool `env:"PERF_ENABLE_METRICS" envDefault:"false"`
}
