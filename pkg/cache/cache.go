package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store penyimpanan respons publik. Diimplementasikan oleh Memory dan
// redis.Client.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}

type Item struct {
	Value      []byte
	Expiration int64
}

// Memory store in-process, dipakai saat redis dimatikan.
type Memory struct {
	items map[string]Item
	mu    sync.RWMutex
	stop  chan struct{}
	once  sync.Once
}

func NewMemory(gcInterval time.Duration) *Memory {
	c := &Memory{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}
	if gcInterval > 0 {
		go c.startGC(gcInterval)
	}
	return c
}

func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      append([]byte(nil), value...),
		Expiration: time.Now().Add(ttl).UnixNano(),
	}
	return nil
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.Expiration {
		return nil, false, nil
	}
	return item.Value, true, nil
}

func (c *Memory) DeletePrefix(_ context.Context, prefix string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var deleted int
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
			deleted++
		}
	}
	return deleted, nil
}

func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close menghentikan goroutine GC.
func (c *Memory) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Memory) startGC(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *Memory) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range c.items {
		if now.UnixNano() > v.Expiration {
			delete(c.items, k)
		}
	}
}
