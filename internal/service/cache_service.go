package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/pkg/cache"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
)

// maxCachedBody respons lebih besar dari ini tidak di-cache.
const maxCachedBody = 1 << 20

// CacheService cache respons endpoint publik. Store bisa redis atau memory.
type CacheService struct {
	store  cache.Store
	ttl    time.Duration
	prefix string
}

func NewCacheService(store cache.Store, ttl time.Duration) *CacheService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CacheService{store: store, ttl: ttl, prefix: constants.CacheKeyPublic}
}

func (s *CacheService) Enabled() bool {
	return s != nil && s.store != nil
}

// GenerateCacheKey key stabil dari origin, path dan query; urutan query
// diabaikan. origin (scheme://host) ikut di key karena link paginasi di body
// bersifat absolut.
func (s *CacheService) GenerateCacheKey(origin, path string, query url.Values) string {
	h := md5.New()
	h.Write([]byte(origin))
	h.Write([]byte{0})
	h.Write([]byte(path))

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values := append([]string(nil), query[k]...)
		sort.Strings(values)
		for _, v := range values {
			fmt.Fprintf(h, "&%s=%s", k, v)
		}
	}

	section := strings.Trim(strings.TrimPrefix(path, "/api/v1/public"), "/")
	if i := strings.IndexByte(section, '/'); i >= 0 {
		section = section[:i]
	}
	return fmt.Sprintf("%s%s:%x", s.prefix, section, h.Sum(nil))
}

func (s *CacheService) GetCachedResponse(ctx context.Context, key string) ([]byte, bool) {
	if !s.Enabled() {
		return nil, false
	}
	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to get cached response").
			String("cache_key", key).
			Err(err).
			Log()
		return nil, false
	}
	return data, ok
}

// SetCachedResponse hanya menyimpan 200 dengan ukuran wajar.
func (s *CacheService) SetCachedResponse(ctx context.Context, key string, status int, data []byte) {
	if !s.ShouldCache(status, len(data)) {
		return
	}
	if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
		logger.WarnWithContext(ctx, "Failed to set cached response").
			String("cache_key", key).
			Err(err).
			Log()
		return
	}
	logger.DebugWithContext(ctx, "Response cached").
		String("cache_key", key).
		Int("data_size", len(data)).
		Log()
}

func (s *CacheService) ShouldCache(status, size int) bool {
	return s.Enabled() && status == 200 && size > 0 && size <= maxCachedBody
}

// Flush menghapus semua respons publik, dipanggil setelah mutasi admin.
func (s *CacheService) Flush(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, nil
	}
	n, err := s.store.DeletePrefix(ctx, s.prefix)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to flush public cache").Err(err).Log()
		return 0, err
	}
	logger.DebugWithContext(ctx, "Public cache flushed").Int("keys", n).Log()
	return n, nil
}
