package travel

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shopping-route-service/internal/domain"
	"shopping-route-service/internal/ports"
)

// RedisTravelCache is a cache-aside decorator over a TravelTimeProvider.
// Live routing lookups are the expensive part of graph construction, so
// cached legs are served from Redis and misses fall through to the inner
// provider. Cache write failures are logged, never fatal: the solver can
// always recompute.
type RedisTravelCache struct {
	client *redis.Client
	next   ports.TravelTimeProvider
	ttl    time.Duration
}

func NewRedisTravelCache(client *redis.Client, next ports.TravelTimeProvider, ttl time.Duration) *RedisTravelCache {
	return &RedisTravelCache{client: client, next: next, ttl: ttl}
}

func (c *RedisTravelCache) TravelTimeMinutes(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (float64, error) {
	key := c.cacheKey(origin, destination)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		minutes, perr := strconv.ParseFloat(val, 64)
		if perr == nil {
			return minutes, nil
		}
		log.Printf("travel cache: bad entry key=%s val=%q: %v", key, val, perr)
	} else if err != redis.Nil {
		log.Printf("travel cache: read failed key=%s: %v", key, err)
	}

	minutes, err := c.next.TravelTimeMinutes(ctx, origin, destination)
	if err != nil {
		return 0, err
	}

	if err := c.client.Set(ctx, key, strconv.FormatFloat(minutes, 'f', -1, 64), c.ttl).Err(); err != nil {
		log.Printf("travel cache: write failed key=%s: %v", key, err)
	}

	return minutes, nil
}

// cacheKey rounds coordinates to six decimal places (~0.1m) so that equal
// locations produced by different float paths share an entry.
func (c *RedisTravelCache) cacheKey(a, b domain.Coordinate) string {
	return fmt.Sprintf("travel:%.6f,%.6f|%.6f,%.6f", a.Lat, a.Lon, b.Lat, b.Lon)
}
