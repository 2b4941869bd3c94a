package service

import (
	"context"
	"mime/multipart"

	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

// UploadService upload gambar lepas, misalnya untuk konten rich text.
type UploadService struct {
	files files
}

func NewUploadService(fs storage.Storage) *UploadService {
	return &UploadService{files: files{storage: fs}}
}

func (s *UploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UploadImage")

	if file == nil {
		return "", apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	return s.files.upload(ctx, file, storage.ImageRule, "images", "Gagal mengunggah gambar.")
}
