package service

import (
	"context"
	"mime/multipart"

	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

// files pembungkus storage untuk service: validasi, upload, dan hapus
// best-effort.
type files struct {
	storage storage.Storage
}

// upload memvalidasi file terhadap rule lalu menyimpannya. Kegagalan
// validasi menjadi 400, kegagalan storage menjadi UPLOAD_FAILED.
func (f files) upload(ctx context.Context, file *multipart.FileHeader, rule storage.Rule, folder, failMessage string) (string, error) {
	if err := rule.Validate(file); err != nil {
		return "", apperrors.NewBadRequest(err.Error())
	}

	url, err := f.storage.Upload(ctx, file, folder)
	if err != nil {
		logger.ErrorWithContext(ctx, "File upload failed").
			String("folder", folder).
			String("filename", file.Filename).
			Err(err).
			Log()
		return "", apperrors.NewUploadFailed(failMessage, err)
	}

	logger.InfoWithContext(ctx, "File uploaded").
		String("folder", folder).
		String("url", url).
		Log()
	return url, nil
}

// discard menghapus file bila dikelola storage ini. Error hanya di-log.
func (f files) discard(ctx context.Context, url string) {
	if url == "" || !f.storage.IsManaged(url) {
		return
	}
	if err := f.storage.Delete(ctx, url); err != nil {
		logger.WarnWithContext(ctx, "Failed to delete superseded file").
			String("url", url).
			Err(err).
			Log()
	}
}

// replace mengganti file: upload yang baru dulu, persist, baru hapus yang
// lama. Bila persist gagal, upload baru dihapus dan file lama tetap utuh.
func (f files) replace(
	ctx context.Context,
	file *multipart.FileHeader,
	rule storage.Rule,
	folder, failMessage, oldURL string,
	persist func(newURL string) error,
) error {
	newURL, err := f.upload(ctx, file, rule, folder, failMessage)
	if err != nil {
		return err
	}

	if err := persist(newURL); err != nil {
		f.discard(ctx, newURL)
		return err
	}

	if oldURL != newURL {
		f.discard(ctx, oldURL)
	}
	return nil
}

// withOptionalFile menjalankan persist dengan URL baru bila file dikirim,
// atau dengan URL lama bila tidak.
func (f files) withOptionalFile(
	ctx context.Context,
	file *multipart.FileHeader,
	rule storage.Rule,
	folder, failMessage, oldURL string,
	persist func(url string) error,
) error {
	if file == nil {
		return persist(oldURL)
	}
	return f.replace(ctx, file, rule, folder, failMessage, oldURL, persist)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
