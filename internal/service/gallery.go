package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
	"gorm.io/gorm"
)

const (
	galleryFolder          = "galleries"
	msgGalleryNotFound     = "Galeri tidak ditemukan."
	msgGalleryImageMissing = "Gambar tidak ditemukan."
	msgGalleryImageForeign = "Gambar tidak ada di galeri ini."
	msgGalleryMaxImages    = "Maksimal 4 gambar per galeri."
	msgGalleryUploadFailed = "Gagal mengunggah gambar galeri."
)

type GalleryStore interface {
	CrudStore[model.Gallery]
	LockByID(ctx context.Context, id uint) (*model.Gallery, error)
	CountImages(ctx context.Context, galleryID uint) (int64, error)
	ListImages(ctx context.Context, galleryID uint) ([]model.GalleryImage, error)
	CreateImages(ctx context.Context, images []model.GalleryImage) error
	FindImage(ctx context.Context, imageID uint) (*model.GalleryImage, error)
	DeleteImage(ctx context.Context, imageID uint) error
	DeleteImages(ctx context.Context, galleryID uint) error
}

type GalleryService struct {
	resource[model.Gallery]
	repo  GalleryStore
	tx    Transactor
	files files
}

func NewGalleryService(repo GalleryStore, tx Transactor, fs storage.Storage) *GalleryService {
	return &GalleryService{
		resource: newResource[model.Gallery](repo, "gallery", msgGalleryNotFound),
		repo:     repo,
		tx:       tx,
		files:    files{storage: fs},
	}
}

func galleryFull(existing int64) error {
	return apperrors.NewBadRequest(fmt.Sprintf("Galeri sudah memiliki %d gambar. %s", existing, msgGalleryMaxImages))
}

// uploadAll memvalidasi semua file dulu, lalu mengunggah satu per satu.
// Bila satu gagal, file yang sudah terunggah dihapus.
func (s *GalleryService) uploadAll(ctx context.Context, uploads []*multipart.FileHeader) ([]string, error) {
	for _, f := range uploads {
		if err := storage.ImageRule.Validate(f); err != nil {
			return nil, apperrors.NewBadRequest(err.Error())
		}
	}

	urls := make([]string, 0, len(uploads))
	for _, f := range uploads {
		url, err := s.files.upload(ctx, f, storage.ImageRule, galleryFolder, msgGalleryUploadFailed)
		if err != nil {
			s.discardAll(ctx, urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *GalleryService) discardAll(ctx context.Context, urls []string) {
	for _, url := range urls {
		s.files.discard(ctx, url)
	}
}

func imagesFor(galleryID uint, urls []string) []model.GalleryImage {
	images := make([]model.GalleryImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, model.GalleryImage{GalleryID: galleryID, Image: url})
	}
	return images
}

func (s *GalleryService) Create(ctx context.Context, req *dto.GalleryRequest, uploads []*multipart.FileHeader) (*model.Gallery, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateGallery")

	if len(uploads) > constants.MaxGalleryImages {
		return nil, apperrors.NewBadRequest(msgGalleryMaxImages)
	}
	urls, err := s.uploadAll(ctx, uploads)
	if err != nil {
		return nil, err
	}

	gallery := &model.Gallery{
		Title:       strings.TrimSpace(req.Title),
		Description: sanitize.OptionalHTML(req.Description),
	}
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, gallery); err != nil {
			return err
		}
		return s.repo.CreateImages(ctx, imagesFor(gallery.ID, urls))
	})
	if err != nil {
		s.discardAll(ctx, urls)
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Gallery created").
		Uint("gallery_id", gallery.ID).
		Int("images", len(urls)).
		Log()
	return s.Get(ctx, gallery.ID)
}

func (s *GalleryService) Update(ctx context.Context, id uint, req *dto.UpdateGalleryRequest) (*model.Gallery, error) {
	gallery, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		gallery.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		gallery.Description = sanitize.OptionalHTML(req.Description)
	}

	if err := s.repo.Update(ctx, gallery); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return gallery, nil
}

// AddImages menambah gambar. Baris galeri dikunci selama hitung dan insert
// supaya dua request paralel tidak melewati batas 4 gambar.
func (s *GalleryService) AddImages(ctx context.Context, id uint, uploads []*multipart.FileHeader) (*model.Gallery, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "AddGalleryImages")

	if len(uploads) == 0 {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	if len(uploads) > constants.MaxGalleryImages {
		return nil, apperrors.NewBadRequest(msgGalleryMaxImages)
	}

	// cek awal tanpa lock agar tidak mengunggah file yang pasti ditolak
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	count, err := s.repo.CountImages(ctx, id)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	if count+int64(len(uploads)) > constants.MaxGalleryImages {
		return nil, galleryFull(count)
	}

	urls, err := s.uploadAll(ctx, uploads)
	if err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.LockByID(ctx, id); err != nil {
			return err
		}
		count, err := s.repo.CountImages(ctx, id)
		if err != nil {
			return err
		}
		if count+int64(len(urls)) > constants.MaxGalleryImages {
			return galleryFull(count)
		}
		return s.repo.CreateImages(ctx, imagesFor(id, urls))
	})
	if err != nil {
		s.discardAll(ctx, urls)
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Gallery images added").
		Uint("gallery_id", id).
		Int("images", len(urls)).
		Log()
	return s.Get(ctx, id)
}

func (s *GalleryService) ListImages(ctx context.Context, id uint) ([]model.GalleryImage, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	images, err := s.repo.ListImages(ctx, id)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return images, nil
}

func (s *GalleryService) DeleteImage(ctx context.Context, galleryID, imageID uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteGalleryImage")

	if _, err := s.Get(ctx, galleryID); err != nil {
		return err
	}
	image, err := s.repo.FindImage(ctx, imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(msgGalleryImageMissing)
	}
	if err != nil {
		return s.mapError(ctx, err)
	}
	if image.GalleryID != galleryID {
		return apperrors.NewBadRequest(msgGalleryImageForeign)
	}

	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return mapError(ctx, err, msgGalleryImageMissing)
	}
	s.files.discard(ctx, image.Image)
	return nil
}

// Delete menghapus gambar dan galeri dalam satu transaksi; file dihapus
// setelah commit.
func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteGallery")

	gallery, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteImages(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return s.mapError(ctx, err)
	}

	for _, img := range gallery.Images {
		s.files.discard(ctx, img.Image)
	}
	logger.InfoWithContext(ctx, "Gallery deleted").Uint("gallery_id", id).Log()
	return nil
}
