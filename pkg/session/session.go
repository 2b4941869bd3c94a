package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/Payphone-Digital/landing-cms/config"
	"github.com/gorilla/securecookie"
)

// ErrNoCookie cookie sesi tidak ada di request.
var ErrNoCookie = errors.New("session cookie not present")

// Manager menandatangani access token ke dalam cookie HttpOnly.
type Manager struct {
	codec    *securecookie.SecureCookie
	name     string
	domain   string
	path     string
	secure   bool
	sameSite http.SameSite
	maxAge   time.Duration
}

// NewManager membuat Manager dari konfigurasi cookie. Tanpa COOKIE_SECRET
// (hanya di development) dipakai key acak, sehingga cookie tidak bertahan
// setelah restart.
func NewManager(cfg config.CookieConfig, maxAge time.Duration) (*Manager, error) {
	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("failed to generate cookie hash key")
		}
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
		switch len(blockKey) {
		case 16, 24, 32:
		default:
			return nil, errors.New("COOKIE_BLOCK_KEY must be 16, 24 or 32 bytes")
		}
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(maxAge.Seconds()))

	path := cfg.Path
	if path == "" {
		path = "/"
	}

	return &Manager{
		codec:    codec,
		name:     cfg.Name,
		domain:   cfg.Domain,
		path:     path,
		secure:   cfg.Secure,
		sameSite: cfg.SameSite,
		maxAge:   maxAge,
	}, nil
}

func (m *Manager) Name() string { return m.name }

// Set menulis token ke cookie bertanda tangan.
func (m *Manager) Set(w http.ResponseWriter, token string) error {
	encoded, err := m.codec.Encode(m.name, token)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie(encoded, int(m.maxAge.Seconds())))
	return nil
}

// Read mengambil token dari cookie. Cookie yang tanda tangannya tidak valid
// atau kedaluwarsa mengembalikan error dari securecookie.
func (m *Manager) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(m.name)
	if err != nil {
		return "", ErrNoCookie
	}

	var token string
	if err := m.codec.Decode(m.name, c.Value, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Clear menghapus cookie di browser.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

// IsDecodeError true bila cookie ada tapi tidak bisa diverifikasi.
func IsDecodeError(err error) bool {
	var scErr securecookie.Error
	return errors.As(err, &scErr) && scErr.IsDecode()
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	}
}
