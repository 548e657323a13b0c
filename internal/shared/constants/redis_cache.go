package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: yelloride:{module}:{operation}:{identifier}

const CachePrefix = "yelloride"

// Fare data is seeded and rarely edited, so it tolerates long TTLs; admin
// writes invalidate the whole fare key space anyway.
const TTLFareData = 6 * time.Hour

// Rate limit counters live in their own key space with window-sized TTLs.
const RateLimitPrefix = CachePrefix + ":ratelimit"

func RegionsKey() string {
	return fmt.Sprintf("%s:fares:regions", CachePrefix)
}

func DeparturesKey(region string) string {
	return fmt.Sprintf("%s:fares:departures:%s", CachePrefix, region)
}

func ArrivalsKey(region, departure string) string {
	return fmt.Sprintf("%s:fares:arrivals:%s:%s", CachePrefix, region, departure)
}

func RouteFareKey(region, departure, arrival string) string {
	return fmt.Sprintf("%s:fares:route:%s:%s:%s", CachePrefix, region, departure, arrival)
}

// FareCachePattern matches every cached fare entry, used for invalidation
// after admin writes.
func FareCachePattern() string {
	return fmt.Sprintf("%s:fares:*", CachePrefix)
}
