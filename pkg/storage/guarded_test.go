package storage

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/Payphone-Digital/landing-cms/pkg/circuit"
	"github.com/stretchr/testify/assert"
)

type flakyStorage struct {
	err   error
	calls int
}

func (f *flakyStorage) Upload(_ context.Context, _ *multipart.FileHeader, _ string) (string, error) {
	f.calls++
	return "", f.err
}

func (f *flakyStorage) Delete(_ context.Context, _ string) error {
	f.calls++
	return f.err
}

func (f *flakyStorage) IsManaged(string) bool { return true }

func TestGuarded_OpensOnBackendErrors(t *testing.T) {
	backend := &flakyStorage{err: errors.New("connection refused")}
	g := Guard(backend, circuit.NewBreaker("s3", circuit.Config{
		Threshold: 2, Timeout: time.Hour, SuccessThreshold: 1, MaxHalfOpen: 1,
	}, nil))

	ctx := context.Background()
	_, _ = g.Upload(ctx, &multipart.FileHeader{Filename: "a.png"}, "news")
	_ = g.Delete(ctx, "http://cdn/news/a.png")

	_, err := g.Upload(ctx, &multipart.FileHeader{Filename: "b.png"}, "news")
	assert.ErrorIs(t, err, circuit.ErrCircuitOpen)
	assert.Equal(t, 2, backend.calls)
	assert.Equal(t, circuit.StateOpen, g.Breaker().State())
	assert.True(t, g.IsManaged("x"))
}

func TestGuarded_ValidationErrorsKeepCircuitClosed(t *testing.T) {
	backend := &flakyStorage{err: &ValidationError{Message: "File terlalu besar."}}
	g := Guard(backend, circuit.NewBreaker("s3", circuit.Config{
		Threshold: 1, Timeout: time.Hour, SuccessThreshold: 1, MaxHalfOpen: 1,
	}, nil))

	for i := 0; i < 3; i++ {
		_, err := g.Upload(context.Background(), &multipart.FileHeader{Filename: "big.png"}, "news")
		assert.True(t, IsValidationError(err))
	}
	assert.Equal(t, circuit.StateClosed, g.Breaker().State())
}
