package constants

const AppVersion = "1.0.0"

// Cache Key Prefixes
const (
	CacheKeyPrefix = "cms:"
	CacheKeyPublic = CacheKeyPrefix + "public:"
)

// Gin context keys yang diisi middleware auth
const (
	GinKeyUserID    = "user_id"
	GinKeyUserEmail = "user_email"
)
