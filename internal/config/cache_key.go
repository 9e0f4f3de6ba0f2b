package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardKey returns the cache key for the dashboard view of a catalog version
func (r *CacheKeyStruct) DashboardKey(catalogVersion string, top, recent int) string {
	return fmt.Sprintf("catalog:%s:dashboard:%d:%d", catalogVersion, top, recent)
}

// AnalyticsKey returns the cache key for the analytics view of a catalog version
func (r *CacheKeyStruct) AnalyticsKey(catalogVersion string) string {
	return fmt.Sprintf("catalog:%s:analytics", catalogVersion)
}

// NotificationsChannel returns the Redis PubSub channel carrying verification notifications
func (r *CacheKeyStruct) NotificationsChannel() string {
	return "verification:notifications"
}

var CacheKey = NewCacheKeyStruct()
