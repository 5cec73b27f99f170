// ABOUTME: Deterministic cache key derivation for user reads
// ABOUTME: Filter keys canonicalize the predicate so equal queries share one entry

package users

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// cacheTTL bounds staleness for every user cache entry
	cacheTTL = 300 * time.Second

	// maxCachedListSize is the ceiling above which list results are never cached
	maxCachedListSize = 1000

	allUsersKey = "users:all"
)

// userKey returns the cache key for a single user snapshot.
func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// userProfileKey returns the cache key for a user-with-profile snapshot.
func userProfileKey(id int64) string {
	return fmt.Sprintf("user:%d:with_profile", id)
}

// filterKey returns the cache key for a filtered user list. The encoding is
// order-independent: keys are sorted before serialization so equal filter maps
// always collide to the same cache key. An empty filter shares the all-users key.
func filterKey(filters map[string]interface{}) string {
	if len(filters) == 0 {
		return allUsersKey
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, filters[k]))
	}

	return "users:filter:" + strings.Join(pairs, "&")
}
