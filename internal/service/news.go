package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/Payphone-Digital/landing-cms/pkg/slug"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

const (
	newsFolder          = "news"
	msgNewsNotFound     = "News not found"
	msgNewsNotPublished = "News not published"
	msgNewsUploadFailed = "Gagal mengunggah gambar berita."
)

type NewsStore interface {
	CrudStore[model.News]
	FindBySlug(ctx context.Context, slug string) (*model.News, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	ListPublished(ctx context.Context, params query.Params) (*query.Page[model.News], error)
	ListByCategory(ctx context.Context, categoryID uint, params query.Params, onlyPublished bool) (*query.Page[model.News], error)
	ReplaceTags(ctx context.Context, newsID uint, tagIDs []uint) error
	DeleteTagLinks(ctx context.Context, newsID uint) error
}

// IDChecker cukup untuk memastikan foreign key ada.
type IDChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type TagFinder interface {
	FindByIDs(ctx context.Context, ids []uint) ([]model.Tag, error)
}

type NewsService struct {
	resource[model.News]
	repo       NewsStore
	categories IDChecker
	tags       TagFinder
	tx         Transactor
	files      files
}

func NewNewsService(repo NewsStore, categories IDChecker, tags TagFinder, tx Transactor, store storage.Storage) *NewsService {
	return &NewsService{
		resource:   newResource[model.News](repo, "news", msgNewsNotFound),
		repo:       repo,
		categories: categories,
		tags:       tags,
		tx:         tx,
		files:      files{storage: store},
	}
}

func (s *NewsService) ensureCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return s.mapError(ctx, err)
	}
	if !ok {
		return apperrors.NewBadRequest(fmt.Sprintf("Category with id %d does not exist", id))
	}
	return nil
}

// ensureTags memastikan semua id tag ada; pesan menyebut id yang hilang.
func (s *NewsService) ensureTags(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return s.mapError(ctx, err)
	}
	if len(found) == len(ids) {
		return nil
	}

	existing := make(map[uint]struct{}, len(found))
	for _, t := range found {
		existing[t.ID] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, fmt.Sprint(id))
		}
	}
	return apperrors.NewBadRequest(fmt.Sprintf("Tag(s) with id(s) %s do not exist", strings.Join(missing, ", ")))
}

func (s *NewsService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	return slug.Unique(ctx, title, func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, excludeID)
	})
}

// applyStatus mengisi publishedAt saat pertama kali berstatus published.
func applyStatus(news *model.News, status string) {
	if status == "" {
		status = model.NewsStatusDraft
	}
	news.Status = status
	if status == model.NewsStatusPublished && news.PublishedAt == nil {
		news.PublishedAt = ptr(time.Now())
	}
}

func (s *NewsService) Create(ctx context.Context, actorID uint, req *dto.CreateNewsRequest, file *multipart.FileHeader) (*model.News, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateNews")

	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.ensureTags(ctx, req.TagIDs); err != nil {
		return nil, err
	}

	news := &model.News{
		Title:       strings.TrimSpace(req.Title),
		Excerpt:     req.Excerpt,
		Description: sanitize.HTML(req.Description),
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	applyStatus(news, req.Status)

	persist := func(imageURL string) error {
		if imageURL != "" {
			news.Image = &imageURL
		}
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			generated, err := s.uniqueSlug(ctx, news.Title, 0)
			if err != nil {
				return err
			}
			news.Slug = generated
			if err := s.repo.Create(ctx, news); err != nil {
				return err
			}
			return s.repo.ReplaceTags(ctx, news.ID, req.TagIDs)
		})
	}

	if err := s.files.withOptionalFile(ctx, file, storage.ImageRule, newsFolder, msgNewsUploadFailed, "", persist); err != nil {
		logger.ErrorWithContext(ctx, "Failed to create news").Err(err).Log()
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "News created").
		Uint("news_id", news.ID).
		String("slug", news.Slug).
		Log()
	return s.Get(ctx, news.ID)
}

// Update file opsional; bila file ditolak atau gagal diunggah tidak ada
// perubahan yang tersimpan.
func (s *NewsService) Update(ctx context.Context, id, actorID uint, req *dto.UpdateNewsRequest, file *multipart.FileHeader) (*model.News, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateNews")

	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previousImage := deref(news.Image)

	if req.CategoryID != nil && *req.CategoryID != news.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		news.CategoryID = *req.CategoryID
		news.Category = nil
	}
	if req.TagIDs != nil {
		if err := s.ensureTags(ctx, req.TagIDs); err != nil {
			return nil, err
		}
	}

	retitled := req.Title != nil && strings.TrimSpace(*req.Title) != news.Title
	if req.Title != nil {
		news.Title = strings.TrimSpace(*req.Title)
	}
	setIf(&news.Excerpt, req.Excerpt)
	if req.Description != nil {
		news.Description = sanitize.HTML(*req.Description)
	}
	if req.Image != nil {
		news.Image = req.Image
	}
	if req.Status != nil {
		applyStatus(news, *req.Status)
	}
	news.UpdatedByID = &actorID

	persist := func(imageURL string) error {
		if file != nil {
			news.Image = &imageURL
		}
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			if retitled {
				generated, err := s.uniqueSlug(ctx, news.Title, news.ID)
				if err != nil {
					return err
				}
				news.Slug = generated
			}
			if err := s.repo.Update(ctx, news); err != nil {
				return err
			}
			if req.TagIDs != nil {
				return s.repo.ReplaceTags(ctx, news.ID, req.TagIDs)
			}
			return nil
		})
	}

	err = s.files.withOptionalFile(ctx, file, storage.ImageRule, newsFolder, msgNewsUploadFailed, previousImage, persist)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "News updated").Uint("news_id", id).Log()
	return s.Get(ctx, id)
}

// Delete menghapus relasi tag dan berita dalam satu transaksi, lalu gambar.
func (s *NewsService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithOperation(ctx, "service", "DeleteNews")

	news, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteTagLinks(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return s.mapError(ctx, err)
	}

	s.files.discard(ctx, deref(news.Image))
	logger.InfoWithContext(ctx, "News deleted").Uint("news_id", id).Log()
	return nil
}

func (s *NewsService) UploadImage(ctx context.Context, id, actorID uint, file *multipart.FileHeader) (*model.News, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UploadNewsImage")

	if file == nil {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.files.replace(ctx, file, storage.ImageRule, newsFolder, msgNewsUploadFailed, deref(news.Image), func(url string) error {
		news.Image = &url
		news.UpdatedByID = &actorID
		return s.repo.Update(ctx, news)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return news, nil
}

func (s *NewsService) GetBySlug(ctx context.Context, value string) (*model.News, error) {
	news, err := s.repo.FindBySlug(ctx, value)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return news, nil
}

// GetPublished dipakai endpoint publik: berita non-published tidak terlihat.
func (s *NewsService) GetPublished(ctx context.Context, id uint) (*model.News, error) {
	news, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return onlyPublished(news)
}

func (s *NewsService) GetPublishedBySlug(ctx context.Context, value string) (*model.News, error) {
	news, err := s.GetBySlug(ctx, value)
	if err != nil {
		return nil, err
	}
	return onlyPublished(news)
}

func onlyPublished(news *model.News) (*model.News, error) {
	if news.Status != model.NewsStatusPublished {
		return nil, apperrors.NewNotFound(msgNewsNotPublished)
	}
	return news, nil
}

func (s *NewsService) ListPublished(ctx context.Context, params query.Params) (*query.Page[model.News], error) {
	page, err := s.repo.ListPublished(ctx, params)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return page, nil
}

// ListByCategory 404 bila kategori tidak ada.
func (s *NewsService) ListByCategory(ctx context.Context, categoryID uint, params query.Params, publishedOnly bool) (*query.Page[model.News], error) {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	if !ok {
		return nil, apperrors.NewNotFound(msgCategoryNotFound)
	}

	page, err := s.repo.ListByCategory(ctx, categoryID, params, publishedOnly)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return page, nil
}
