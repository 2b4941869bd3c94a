package storage

import (
	"context"
	"fmt"

	"github.com/Payphone-Digital/landing-cms/config"
	"github.com/Payphone-Digital/landing-cms/pkg/circuit"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
)

// New memilih driver dari STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		tmpl := cfg.URLTemplate
		if tmpl == "" {
			tmpl = DefaultLocalURLTemplate
		}
		urls, err := NewURLBuilder(tmpl, cfg.PublicBaseURL, "")
		if err != nil {
			return nil, err
		}
		return NewLocal(cfg.LocalRoot, urls)

	case "s3":
		tmpl := cfg.URLTemplate
		if tmpl == "" {
			tmpl = DefaultS3URLTemplate
		}
		base := cfg.PublicBaseURL
		if cfg.S3.Endpoint != "" && cfg.URLTemplate == "" {
			base = cfg.S3.Endpoint
		}
		urls, err := NewURLBuilder(tmpl, base, cfg.S3.Bucket)
		if err != nil {
			return nil, err
		}
		s3, err := NewS3(ctx, S3Options{
			Endpoint:     cfg.S3.Endpoint,
			Region:       cfg.S3.Region,
			Bucket:       cfg.S3.Bucket,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
		}, urls)
		if err != nil {
			return nil, err
		}
		return Guard(s3, circuit.NewBreaker("s3:"+cfg.S3.Bucket, circuit.DefaultConfig(), logger.GetLogger())), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
