package shared

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"booking-api/shared/cache"
	"booking-api/shared/constant"
	"booking-api/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeySeparator = ":"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins key parts with the cache separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a cache key from a prefix plus the query and
// filter shape, so different listings land on different keys.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	paramPart, err := json.Marshal(params)
	if err != nil {
		paramPart = []byte(constant.Empty)
	}

	where, args := filter.GetWhereClause()

	argPart, err := json.Marshal(args)
	if err != nil {
		argPart = []byte(constant.Empty)
	}

	return BuildCacheKey(prefix, string(paramPart), where, string(argPart))
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
