package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardStatsKey returns the cache key for the admin dashboard aggregate.
func (r *CacheKeyStruct) DashboardStatsKey() string {
	return "dashboard:stats"
}

var CacheKey = NewCacheKeyStruct()
