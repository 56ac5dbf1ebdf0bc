package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/coffee-kiosk/internal/core/domain"
)

const ingredientKeyPrefix = "ingredient:"

// sufficiencyScript compares every ingredient level against the recipe in
// one round trip. A missing key counts as an empty tank.
var sufficiencyScript = redis.NewScript(`
for i = 1, #KEYS do
	local current = tonumber(redis.call('GET', KEYS[i]) or '0')
	if current < tonumber(ARGV[i]) then
		return 0
	end
end
return 1
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func ingredientKey(ing domain.Ingredient) string {
	return ingredientKeyPrefix + string(ing)
}

func (r *RedisAdapter) Sufficient(ctx context.Context, item domain.MenuItem) (bool, error) {
	var keys []string
	var required []interface{}
	for _, ing := range domain.Ingredients() {
		keys = append(keys, ingredientKey(ing))
		required = append(required, item.Recipe[ing])
	}

	result, err := sufficiencyScript.Run(ctx, r.client, keys, required...).Int()
	if err != nil {
		return false, fmt.Errorf("sufficiency check: %w", err)
	}

	return result == 1, nil
}

func (r *RedisAdapter) Consume(ctx context.Context, item domain.MenuItem) error {
	pipe := r.client.TxPipeline()
	for _, ing := range domain.Ingredients() {
		if qty := item.Recipe[ing]; qty > 0 {
			pipe.DecrBy(ctx, ingredientKey(ing), int64(qty))
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("consume ingredients: %w", err)
	}
	return nil
}

func (r *RedisAdapter) Restore(ctx context.Context, item domain.MenuItem) error {
	pipe := r.client.TxPipeline()
	for _, ing := range domain.Ingredients() {
		if qty := item.Recipe[ing]; qty > 0 {
			pipe.IncrBy(ctx, ingredientKey(ing), int64(qty))
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("restore ingredients: %w", err)
	}
	return nil
}

func (r *RedisAdapter) Refill(ctx context.Context) error {
	pipe := r.client.TxPipeline()
	for ing, level := range domain.DefaultLevels() {
		pipe.Set(ctx, ingredientKey(ing), level, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("refill: %w", err)
	}
	return nil
}

func (r *RedisAdapter) Snapshot(ctx context.Context) (map[domain.Ingredient]int, error) {
	ingredients := domain.Ingredients()
	keys := make([]string, len(ingredients))
	for i, ing := range ingredients {
		keys[i] = ingredientKey(ing)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	levels := make(map[domain.Ingredient]int, len(ingredients))
	for i, ing := range ingredients {
		level := 0
		if s, ok := values[i].(string); ok {
			if level, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("snapshot: bad level for %s: %w", ing, err)
			}
		}
		levels[ing] = level
	}
	return levels, nil
}
