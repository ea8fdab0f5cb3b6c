package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barber-club/internal/domain/appointment"
)

// AvailabilityCache guarda a grade de horários livres por
// (barbearia, data, serviço) com TTL curto. Qualquer mudança de estado
// na agenda do dia invalida o dia inteiro.
//
// Cache indisponível nunca derruba a request: na dúvida, recalcula.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 60 * time.Second,
	}
}

func NewRedisClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("redis: invalid url, cache disabled: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}

func slotKey(barbershopID uint, date string, serviceID uint) string {
	return fmt.Sprintf("availability:%d:%s:%d", barbershopID, date, serviceID)
}

func dayPattern(barbershopID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s:*", barbershopID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	barbershopID uint,
	date string,
	serviceID uint,
) ([]domain.TimeSlot, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barbershopID, date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barbershopID uint,
	date string,
	serviceID uint,
	slots []domain.TimeSlot,
) {

	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, slotKey(barbershopID, date, serviceID), raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set failed: %v", err)
	}
}

// InvalidateDay apaga todas as grades do dia (todos os serviços).
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	barbershopID uint,
	date string,
) {

	if c == nil || c.rdb == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, dayPattern(barbershopID, date), 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache: del failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("cache: scan failed: %v", err)
	}
}
