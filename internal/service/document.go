package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

type documentPtr[T any] interface {
	*T
	Doc() *model.Document
}

// DocumentService CRUD untuk entitas berlampiran: pengumuman dan regulasi.
type DocumentService[T any, P documentPtr[T]] struct {
	resource[T]
	store      CrudStore[T]
	files      files
	folder     string
	uploadFail string
}

// DocumentOptions teks yang berbeda per entitas.
type DocumentOptions struct {
	Entity     string
	NotFound   string
	Folder     string
	UploadFail string
}

func NewDocumentService[T any, P documentPtr[T]](repo CrudStore[T], fs storage.Storage, opts DocumentOptions) *DocumentService[T, P] {
	return &DocumentService[T, P]{
		resource:   newResource(repo, opts.Entity, opts.NotFound),
		store:      repo,
		files:      files{storage: fs},
		folder:     opts.Folder,
		uploadFail: opts.UploadFail,
	}
}

func NewAnnouncementService(repo CrudStore[model.Announcement], fs storage.Storage) *DocumentService[model.Announcement, *model.Announcement] {
	return NewDocumentService[model.Announcement](repo, fs, DocumentOptions{
		Entity:     "announcement",
		NotFound:   "Pengumuman tidak ditemukan.",
		Folder:     "announcements",
		UploadFail: "Gagal mengunggah lampiran pengumuman.",
	})
}

func NewRegulationService(repo CrudStore[model.Regulation], fs storage.Storage) *DocumentService[model.Regulation, *model.Regulation] {
	return NewDocumentService[model.Regulation](repo, fs, DocumentOptions{
		Entity:     "regulation",
		NotFound:   "Regulasi tidak ditemukan.",
		Folder:     "regulations",
		UploadFail: "Gagal mengunggah lampiran regulasi.",
	})
}

func (s *DocumentService[T, P]) Create(ctx context.Context, actorID uint, req *dto.DocumentRequest, file *multipart.FileHeader) (*T, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Create")

	item := new(T)
	doc := P(item).Doc()
	doc.Title = strings.TrimSpace(req.Title)
	doc.Description = req.Description
	doc.CreatedByID = &actorID
	doc.UpdatedByID = &actorID

	err := s.files.withOptionalFile(ctx, file, storage.DocumentRule, s.folder, s.uploadFail, "", func(url string) error {
		if url != "" {
			doc.Attachment = &url
		}
		return s.store.Create(ctx, item)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, s.entity+" created").String("title", doc.Title).Log()
	return item, nil
}

func (s *DocumentService[T, P]) Update(ctx context.Context, id, actorID uint, req *dto.UpdateDocumentRequest, file *multipart.FileHeader) (*T, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Update")

	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := P(item).Doc()
	if req.Title != nil {
		doc.Title = strings.TrimSpace(*req.Title)
	}
	setIf(&doc.Description, req.Description)
	doc.UpdatedByID = &actorID

	err = s.files.withOptionalFile(ctx, file, storage.DocumentRule, s.folder, s.uploadFail, deref(doc.Attachment), func(url string) error {
		if url != "" {
			doc.Attachment = &url
		}
		return s.store.Update(ctx, item)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return item, nil
}

// UploadAttachment mengganti lampiran saja.
func (s *DocumentService[T, P]) UploadAttachment(ctx context.Context, id, actorID uint, file *multipart.FileHeader) (*T, error) {
	if file == nil {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	return s.Update(ctx, id, actorID, &dto.UpdateDocumentRequest{}, file)
}

func (s *DocumentService[T, P]) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resource.Delete(ctx, id); err != nil {
		return err
	}
	s.files.discard(ctx, deref(P(item).Doc().Attachment))
	return nil
}
