package redis

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/circuitbreaker"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

const keyPrefix = "bookcatalog"

// QueryCache Redis查询缓存
// 设计说明:
// 1. Cache-Aside:先查缓存,未命中由调用方计算后回填
// 2. 目录只存在于本进程内存,key带实例ID,多个实例之间不会读到彼此的数据
// 3. 所有Redis调用都经过熔断器,Redis不可用时直接降级为未命中
type QueryCache struct {
	client    *redis.Client
	breaker   *circuitbreaker.CircuitBreaker
	namespace string
	ttl       time.Duration
	log       *zap.Logger
}

// NewQueryCache 基于已连接的客户端创建查询缓存
func NewQueryCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *QueryCache {
	breaker := circuitbreaker.NewCircuitBreaker("redis-query-cache", circuitbreaker.DefaultConfig())
	breaker.OnStateChange(func(name string, from, to circuitbreaker.State) {
		log.Warn("circuit breaker state changed",
			zap.String("breaker", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &QueryCache{
		client:    client,
		breaker:   breaker,
		namespace: fmt.Sprintf("%s:%s", keyPrefix, uuid.NewString()),
		ttl:       ttl,
		log:       log,
	}
}

// ProvideQueryCache wire provider
// 未启用缓存或Redis连不上时返回空实现,服务照常启动
func ProvideQueryCache(cfg *config.Config, log *zap.Logger) (appbook.QueryCache, func(), error) {
	if !cfg.Cache.Enabled {
		return appbook.NopQueryCache{}, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout+time.Second)
	defer cancel()

	client, err := NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("query cache disabled", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		return appbook.NopQueryCache{}, func() {}, nil
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("close redis client", zap.Error(err))
		}
	}
	return NewQueryCache(client, cfg.Cache.TTL, log), cleanup, nil
}

// Get 读取缓存,任何失败都视为未命中
func (q *QueryCache) Get(ctx context.Context, generation uint64, path string, query url.Values) ([]byte, bool) {
	key := q.key(generation, path, query)

	var body []byte
	err := q.breaker.Execute(func() error {
		val, err := q.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// 未命中不算Redis故障
			return nil
		}
		if err != nil {
			return err
		}
		body = val
		return nil
	})

	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		recordCache("rejected")
		return nil, false
	case err != nil:
		recordCache("error")
		q.log.Warn("query cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	case body == nil:
		recordCache("miss")
		return nil, false
	default:
		recordCache("hit")
		return body, true
	}
}

// Set 回填缓存,失败只记日志
func (q *QueryCache) Set(ctx context.Context, generation uint64, path string, query url.Values, body []byte) {
	key := q.key(generation, path, query)

	err := q.breaker.Execute(func() error {
		return q.client.Set(ctx, key, body, q.ttl).Err()
	})
	if err != nil && !errors.Is(err, circuitbreaker.ErrOpenState) {
		q.log.Warn("query cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// key 格式: bookcatalog:{实例ID}:{版本号}:{路径}?{排序后的查询参数}
func (q *QueryCache) key(generation uint64, path string, query url.Values) string {
	return buildKey(q.namespace, generation, path, query)
}

func buildKey(namespace string, generation uint64, path string, query url.Values) string {
	// url.Values.Encode按参数名排序,参数顺序不同的请求共享同一个key
	return fmt.Sprintf("%s:%d:%s?%s", namespace, generation, path, query.Encode())
}

func recordCache(result string) {
	metrics.IncCounterVec(metrics.QueryCacheRequests, map[string]string{"result": result})
}
