package book

import (
	"context"
	"net/url"
)

// QueryCache 查询结果缓存(存放已编码的JSON响应体)
// 设计说明:
// 1. key由目录版本号、路径、查询参数组成,写操作后版本号变化,旧key自然不会再被读到
// 2. 缓存是可选的加速层,任何失败都按未命中处理,不能影响请求结果
type QueryCache interface {
	Get(ctx context.Context, generation uint64, path string, query url.Values) ([]byte, bool)
	Set(ctx context.Context, generation uint64, path string, query url.Values, body []byte)
}

// NopQueryCache 未启用缓存时使用
type NopQueryCache struct{}

func (NopQueryCache) Get(context.Context, uint64, string, url.Values) ([]byte, bool) {
	return nil, false
}

func (NopQueryCache) Set(context.Context, uint64, string, url.Values, []byte) {}
