package service

import (
	"strconv"
	"strings"
)

// followerFieldPriority is the ordered fallback list of candidate follower
// fields, flat and dot-nested, tried before the per-platform switch. The
// first field yielding a positive number wins.
var followerFieldPriority = []string{
	"followers",
	"follower_count",
	"followers_count",
	"fan_count",
	"subscriber_count",
	"public_metrics.followers_count",
	"edge_followed_by.count",
	"statistics.subscriberCount",
	"stats.followerCount",
	"data.followers",
}

// platformFollowerField maps each supported platform to the field its API
// exposes, used only when no priority-list entry matched.
var platformFollowerField = map[string]string{
	"instagram": "edge_followed_by.count",
	"twitter":   "public_metrics.followers_count",
	"facebook":  "fan_count",
	"tiktok":    "stats.followerCount",
	"linkedin":  "followersCount",
	"youtube":   "statistics.subscriberCount",
	"twitch":    "followers",
	"github":    "followers",
	"pinterest": "follower_count",
}

// ExtractFollowers resolves a follower count from a loose provider payload.
// It returns nil when no candidate field yields a positive number, so an
// unknown count is never reported as zero.
func ExtractFollowers(payload map[string]any, platform string) *int64 {
	if len(payload) == 0 {
		return nil
	}

	for _, field := range followerFieldPriority {
		if n := positiveNumberAt(payload, field); n != nil {
			return n
		}
	}

	if field, ok := platformFollowerField[strings.ToLower(platform)]; ok {
		return positiveNumberAt(payload, field)
	}
	return nil
}

// positiveNumberAt resolves a flat or dot-nested path and accepts numeric or
// numeric-string values greater than zero.
func positiveNumberAt(payload map[string]any, path string) *int64 {
	var current any = payload
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return asPositiveNumber(current)
}

func asPositiveNumber(value any) *int64 {
	var n int64
	switch typed := value.(type) {
	case float64:
		n = int64(typed)
	case int:
		n = int64(typed)
	case int64:
		n = typed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if n <= 0 {
		return nil
	}
	return &n
}
