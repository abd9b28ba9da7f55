package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Store 抽象读缓存的底层存储，键按资源名前缀组织。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	DeletePrefix(ctx context.Context, prefix string)
}

// Cache 为资源读查询提供带失效的 JSON 缓存。
// 写操作按资源整体失效，宁可多失效也不返回过期数据。
// 零值（nil）Cache 所有方法都是空操作，service 层无需判空。
type Cache struct {
	store Store
	ttl   time.Duration
}

// DefaultTTL 是缓存条目的默认存活时间。
const DefaultTTL = 5 * time.Minute

// New 构造 Cache。ttl <= 0 时使用 DefaultTTL。
func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// GetJSON 读取并反序列化缓存条目，命中时返回 true。
func (c *Cache) GetJSON(ctx context.Context, resource, variant string, dst interface{}) bool {
	if c == nil || c.store == nil {
		return false
	}
	raw, ok := c.store.Get(ctx, entryKey(resource, variant))
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// 损坏的条目按未命中处理，等待下次写入覆盖。
		return false
	}
	return true
}

// SetJSON 序列化并写入缓存条目，序列化失败时静默放弃。
func (c *Cache) SetJSON(ctx context.Context, resource, variant string, value interface{}) {
	if c == nil || c.store == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.store.Set(ctx, entryKey(resource, variant), raw, c.ttl)
}

// Invalidate 清除指定资源的全部缓存条目。
func (c *Cache) Invalidate(ctx context.Context, resource string) {
	if c == nil || c.store == nil {
		return
	}
	c.store.DeletePrefix(ctx, resourcePrefix(resource))
}

func entryKey(resource, variant string) string {
	return resourcePrefix(resource) + variant
}

func resourcePrefix(resource string) string {
	return "cache:" + resource + ":"
}
