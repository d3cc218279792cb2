package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/unifydesk/internal/lookup/entity"
	"github.com/shandysiswandi/unifydesk/internal/pkg/goerror"
	"github.com/shandysiswandi/unifydesk/internal/pkg/instrument"
	"go.opentelemetry.io/otel/trace"
)

const (
	keyStates       = "lookup:states"
	keyCitiesPrefix = "lookup:cities:"
)

// Cache stores lookup results in Redis with a TTL, so the upstream provider
// is hit at most once per window.
type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("lookup.outbound.cache").Start(ctx, name)
}

func (c *Cache) GetStates(ctx context.Context) ([]entity.State, error) {
	ctx, span := c.startSpan(ctx, "GetStates")
	defer span.End()

	raw, err := c.client.Get(ctx, keyStates).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var states []entity.State
	if err := json.Unmarshal(raw, &states); err != nil {
		return nil, err
	}

	return states, nil
}

func (c *Cache) SetStates(ctx context.Context, states []entity.State, ttl time.Duration) error {
	ctx, span := c.startSpan(ctx, "SetStates")
	defer span.End()

	raw, err := json.Marshal(states)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, keyStates, raw, ttl).Err()
}

func (c *Cache) GetCities(ctx context.Context, state string) ([]string, error) {
	ctx, span := c.startSpan(ctx, "GetCities")
	defer span.End()

	raw, err := c.client.Get(ctx, keyCitiesPrefix+state).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cities []string
	if err := json.Unmarshal(raw, &cities); err != nil {
		return nil, err
	}

	return cities, nil
}

func (c *Cache) SetCities(ctx context.Context, state string, cities []string, ttl time.Duration) error {
	ctx, span := c.startSpan(ctx, "SetCities")
	defer span.End()

	raw, err := json.Marshal(cities)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, keyCitiesPrefix+state, raw, ttl).Err()
}
