package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKeys        = 500
	cachePayloadSize = 1024
	cacheKeyTTL      = 5 * time.Minute
)

// cacheProbe owns the Redis client and the keys under its run prefix.
type cacheProbe struct {
	url    string
	prefix string
	keys   int
	client *redis.Client
}

func newCacheProbe(env Environment) (cacheProbe, error) {
	if env.Config == nil || env.Config.RedisURL == "" {
		return cacheProbe{}, fmt.Errorf("REDIS_URL not set: %w", ErrUnavailable)
	}

	return cacheProbe{
		url:    env.Config.RedisURL,
		prefix: config.ScratchKeyPrefix + uuid.NewString() + ":",
		keys:   cacheKeys,
	}, nil
}

func (p *cacheProbe) connect(ctx context.Context) error {
	opt, err := redis.ParseURL(p.url)
	if err != nil {
		return fmt.Errorf("parsing redis url: %w", err)
	}

	p.client = redis.NewClient(opt)

	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	return nil
}

func (p *cacheProbe) key(i int) string {
	return fmt.Sprintf("%s%d", p.prefix, i)
}

func (p *cacheProbe) setKeys(ctx context.Context) error {
	payload := strings.Repeat("x", cachePayloadSize)

	for i := 0; i < p.keys; i++ {
		if err := p.client.Set(ctx, p.key(i), payload, cacheKeyTTL).Err(); err != nil {
			return fmt.Errorf("setting cache key: %w", err)
		}
	}

	return nil
}

func (p *cacheProbe) Cleanup(ctx context.Context) error {
	if p.client == nil {
		return nil
	}

	defer func() {
		_ = p.client.Close()
	}()

	keys := make([]string, 0, p.keys)
	for i := 0; i < p.keys; i++ {
		keys = append(keys, p.key(i))
	}

	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting cache keys: %w", err)
	}

	return nil
}

// cacheReadProbe reads keys set during Prepare.
type cacheReadProbe struct {
	cacheProbe
}

func newCacheReadProbe(env Environment) (Probe, error) {
	base, err := newCacheProbe(env)
	if err != nil {
		return nil, err
	}

	return &cacheReadProbe{cacheProbe: base}, nil
}

func (p *cacheReadProbe) ID() string { return catalog.ProbeCacheRead }

func (p *cacheReadProbe) Prepare(ctx context.Context) error {
	if err := p.connect(ctx); err != nil {
		return err
	}

	return p.setKeys(ctx)
}

func (p *cacheReadProbe) Run(ctx context.Context) error {
	for i := 0; i < p.keys; i++ {
		if err := p.client.Get(ctx, p.key(i)).Err(); err != nil {
			return fmt.Errorf("getting cache key: %w", err)
		}
	}

	return nil
}

// cacheWriteProbe sets fresh keys.
type cacheWriteProbe struct {
	cacheProbe
}

func newCacheWriteProbe(env Environment) (Probe, error) {
	base, err := newCacheProbe(env)
	if err != nil {
		return nil, err
	}

	return &cacheWriteProbe{cacheProbe: base}, nil
}

func (p *cacheWriteProbe) ID() string { return catalog.ProbeCacheWrite }

func (p *cacheWriteProbe) Prepare(ctx context.Context) error {
	return p.connect(ctx)
}

func (p *cacheWriteProbe) Run(ctx context.Context) error {
	return p.setKeys(ctx)
}
