package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SeedLockKey returns the Redis key guarding the one-time sample data load.
func (r *CacheKeyStruct) SeedLockKey() string {
	return "seed:lock"
}

var CacheKey = NewCacheKeyStruct()
