package storage

import (
	"context"
	"mime/multipart"

	"github.com/Payphone-Digital/landing-cms/pkg/circuit"
)

// Guarded membungkus driver remote dengan circuit breaker. Saat open,
// upload langsung gagal tanpa menunggu timeout S3.
type Guarded struct {
	Storage
	breaker *circuit.Breaker
}

func Guard(s Storage, breaker *circuit.Breaker) *Guarded {
	return &Guarded{Storage: s, breaker: breaker}
}

func (g *Guarded) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	var url string
	err := g.breaker.Execute(func() error {
		var err error
		url, err = g.Storage.Upload(ctx, file, folder)
		return err
	}, IsValidationError)
	return url, err
}

func (g *Guarded) Delete(ctx context.Context, fileURL string) error {
	return g.breaker.Execute(func() error {
		return g.Storage.Delete(ctx, fileURL)
	})
}

func (g *Guarded) Breaker() *circuit.Breaker { return g.breaker }
