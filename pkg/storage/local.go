package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Local menyimpan file di disk; router menyajikannya di /uploads.
type Local struct {
	root string
	urls *URLBuilder
}

func NewLocal(root string, urls *URLBuilder) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{root: abs, urls: urls}, nil
}

// Root direktori yang disajikan sebagai /uploads.
func (l *Local) Root() string { return l.root }

func (l *Local) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := ObjectKey(folder, file.Filename)
	dst, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close file: %w", err)
	}

	return l.urls.URL(filepath.ToSlash(key))
}

func (l *Local) Delete(ctx context.Context, fileURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, ok := l.urls.KeyFromURL(fileURL)
	if !ok {
		return nil
	}
	target, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

func (l *Local) IsManaged(fileURL string) bool {
	_, ok := l.urls.KeyFromURL(fileURL)
	return ok
}

// resolve memastikan key tetap di dalam root.
func (l *Local) resolve(key string) (string, error) {
	target := filepath.Join(l.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.root, target)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return target, nil
}
