package slug

import (
	"context"
	"fmt"

	gosimple "github.com/gosimple/slug"
)

// fallback dipakai bila judul tidak menghasilkan karakter slug sama sekali.
const fallback = "untitled"

// maxAttempts batas percobaan suffix sebelum menyerah.
const maxAttempts = 1000

// ExistsFunc memeriksa apakah slug sudah dipakai baris lain.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make mengubah judul menjadi slug huruf kecil dipisah tanda hubung.
func Make(text string) string {
	s := gosimple.Make(text)
	if s == "" {
		return fallback
	}
	return s
}

// Unique menghasilkan slug dari text; bila bentrok dicoba -2, -3, ...
// dan setiap kandidat dicek ulang.
func Unique(ctx context.Context, text string, exists ExistsFunc) (string, error) {
	base := Make(text)
	candidate := base

	for n := 2; n <= maxAttempts+1; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	return "", fmt.Errorf("slug %q: no free suffix after %d attempts", base, maxAttempts)
}
