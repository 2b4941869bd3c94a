package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var ugc = bluemonday.UGCPolicy()

// HTML membersihkan konten rich text dari editor admin (deskripsi berita,
// pengumuman, dll). Tag aman dipertahankan, script dan handler event dibuang.
func HTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// OptionalHTML versi HTML untuk field opsional.
func OptionalHTML(s *string) *string {
	if s == nil {
		return nil
	}
	out := HTML(*s)
	return &out
}
