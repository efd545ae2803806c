package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix           = "user:%d"
	RelationCountsKeyPrefix = "relation:%d:counts"
	BlacklistKeyPrefix      = "blacklist:%s"
)

const (
	UserTTL = 5 * time.Minute
	// RelationCountsTTL is the fallback when no TTL is configured.
	RelationCountsTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RelationCountsKey(userID uint) string {
	return fmt.Sprintf(RelationCountsKeyPrefix, userID)
}

func BlacklistKey(jti string) string {
	return fmt.Sprintf(BlacklistKeyPrefix, jti)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateRelationCounts drops the cached counts for every user given.
// A follow edge touches both ends, so callers pass follower and followee.
func InvalidateRelationCounts(ctx context.Context, userIDs ...uint) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, RelationCountsKey(id))
	}
	Invalidate(ctx, keys...)
}
