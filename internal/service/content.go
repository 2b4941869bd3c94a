package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
	"gorm.io/gorm"
)

// FAQ

type FaqService struct {
	resource[model.Faq]
}

func NewFaqService(repo CrudStore[model.Faq]) *FaqService {
	return &FaqService{resource: newResource(repo, "faq", "FAQ tidak ditemukan.")}
}

func (s *FaqService) Create(ctx context.Context, actorID uint, req *dto.FaqRequest) (*model.Faq, error) {
	faq := &model.Faq{
		Question:    strings.TrimSpace(req.Question),
		Answer:      sanitize.HTML(req.Answer),
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	if err := s.store.Create(ctx, faq); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return faq, nil
}

func (s *FaqService) Update(ctx context.Context, id, actorID uint, req *dto.UpdateFaqRequest) (*model.Faq, error) {
	faq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Question != nil {
		faq.Question = strings.TrimSpace(*req.Question)
	}
	if req.Answer != nil {
		faq.Answer = sanitize.HTML(*req.Answer)
	}
	faq.UpdatedByID = &actorID

	if err := s.store.Update(ctx, faq); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return faq, nil
}

// History

type HistoryService struct {
	resource[model.History]
}

func NewHistoryService(repo CrudStore[model.History]) *HistoryService {
	return &HistoryService{resource: newResource(repo, "history", "History tidak ditemukan.")}
}

func (s *HistoryService) Create(ctx context.Context, req *dto.HistoryRequest) (*model.History, error) {
	history := &model.History{
		Year:        *req.Year,
		Description: req.Description,
		Detail:      sanitize.HTML(req.Detail),
	}
	if err := s.store.Create(ctx, history); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return history, nil
}

func (s *HistoryService) Update(ctx context.Context, id uint, req *dto.UpdateHistoryRequest) (*model.History, error) {
	history, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&history.Year, req.Year)
	setIf(&history.Description, req.Description)
	if req.Detail != nil {
		history.Detail = sanitize.HTML(*req.Detail)
	}

	if err := s.store.Update(ctx, history); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return history, nil
}

// Layanan

const (
	serviceFolder         = "services"
	msgServiceUploadFail  = "Gagal mengunggah ikon layanan."
	msgServiceNotFound    = "Layanan tidak ditemukan."
	msgStatisticNotFound  = "Statistic not found"
	msgSocialNotFound     = "Media sosial tidak ditemukan."
	msgSocialPostNotFound = "Social media post not found."
)

type ServiceItemService struct {
	resource[model.ServiceItem]
	files files
}

func NewServiceItemService(repo CrudStore[model.ServiceItem], fs storage.Storage) *ServiceItemService {
	return &ServiceItemService{
		resource: newResource(repo, "service", msgServiceNotFound),
		files:    files{storage: fs},
	}
}

func (s *ServiceItemService) Create(ctx context.Context, actorID uint, req *dto.ServiceItemRequest, icon *multipart.FileHeader) (*model.ServiceItem, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateServiceItem")

	item := &model.ServiceItem{
		Title:       strings.TrimSpace(req.Title),
		Description: sanitize.HTML(req.Description),
		Link:        req.Link,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	err := s.files.withOptionalFile(ctx, icon, storage.ImageRule, serviceFolder, msgServiceUploadFail, "", func(url string) error {
		item.Icon = url
		return s.store.Create(ctx, item)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return item, nil
}

func (s *ServiceItemService) Update(ctx context.Context, id, actorID uint, req *dto.UpdateServiceItemRequest, icon *multipart.FileHeader) (*model.ServiceItem, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateServiceItem")

	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		item.Description = sanitize.HTML(*req.Description)
	}
	if req.Link != nil {
		item.Link = req.Link
	}
	item.UpdatedByID = &actorID

	err = s.files.withOptionalFile(ctx, icon, storage.ImageRule, serviceFolder, msgServiceUploadFail, item.Icon, func(url string) error {
		item.Icon = url
		return s.store.Update(ctx, item)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return item, nil
}

func (s *ServiceItemService) UpdateIcon(ctx context.Context, id, actorID uint, icon *multipart.FileHeader) (*model.ServiceItem, error) {
	if icon == nil {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	return s.Update(ctx, id, actorID, &dto.UpdateServiceItemRequest{}, icon)
}

func (s *ServiceItemService) Delete(ctx context.Context, id uint) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resource.Delete(ctx, id); err != nil {
		return err
	}
	s.files.discard(ctx, item.Icon)
	return nil
}

// Statistik

type StatisticCategoryService struct {
	resource[model.StatisticCategory]
}

func NewStatisticCategoryService(repo CrudStore[model.StatisticCategory]) *StatisticCategoryService {
	return &StatisticCategoryService{resource: newResource(repo, "statistic category", msgCategoryNotFound)}
}

func (s *StatisticCategoryService) Create(ctx context.Context, req *dto.StatisticCategoryRequest) (*model.StatisticCategory, error) {
	category := &model.StatisticCategory{Name: strings.TrimSpace(req.Name), Link: req.Link}
	if err := s.store.Create(ctx, category); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return category, nil
}

func (s *StatisticCategoryService) Update(ctx context.Context, id uint, req *dto.UpdateStatisticCategoryRequest) (*model.StatisticCategory, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Link != nil {
		category.Link = req.Link
	}
	if err := s.store.Update(ctx, category); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return category, nil
}

type StatisticService struct {
	resource[model.Statistic]
	categories IDChecker
}

func NewStatisticService(repo CrudStore[model.Statistic], categories IDChecker) *StatisticService {
	return &StatisticService{
		resource:   newResource(repo, "statistic", msgStatisticNotFound),
		categories: categories,
	}
}

func (s *StatisticService) ensureCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return s.mapError(ctx, err)
	}
	if !ok {
		return apperrors.NewBadRequest(fmt.Sprintf("Category with id %d does not exist", id))
	}
	return nil
}

func (s *StatisticService) Create(ctx context.Context, req *dto.StatisticRequest) (*model.Statistic, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateStatistic")

	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	stat := &model.Statistic{
		Name:       strings.TrimSpace(req.Name),
		Number:     *req.Number,
		Link:       req.Link,
		CategoryID: req.CategoryID,
	}
	if err := s.store.Create(ctx, stat); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.Get(ctx, stat.ID)
}

func (s *StatisticService) Update(ctx context.Context, id uint, req *dto.UpdateStatisticRequest) (*model.Statistic, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateStatistic")

	stat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil && *req.CategoryID != stat.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		stat.CategoryID = *req.CategoryID
		stat.Category = nil
	}
	if req.Name != nil {
		stat.Name = strings.TrimSpace(*req.Name)
	}
	setIf(&stat.Number, req.Number)
	if req.Link != nil {
		stat.Link = req.Link
	}

	if err := s.store.Update(ctx, stat); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return s.Get(ctx, id)
}

// Media sosial

type SocialMediaStore interface {
	CrudStore[model.SocialMedia]
	FindByName(ctx context.Context, name string) (*model.SocialMedia, error)
}

type SocialMediaService struct {
	resource[model.SocialMedia]
	repo SocialMediaStore
}

func NewSocialMediaService(repo SocialMediaStore) *SocialMediaService {
	return &SocialMediaService{
		resource: newResource[model.SocialMedia](repo, "social media", msgSocialNotFound),
		repo:     repo,
	}
}

// ensureNameFree 409 bila platform sudah dipakai baris lain.
func (s *SocialMediaService) ensureNameFree(ctx context.Context, name string, excludeID uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return s.mapError(ctx, err)
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperrors.NewConflict(fmt.Sprintf("Media sosial %s sudah terdaftar. Pilih tipe yang berbeda.", name))
}

func (s *SocialMediaService) Create(ctx context.Context, req *dto.SocialMediaRequest) (*model.SocialMedia, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateSocialMedia")

	name := strings.ToUpper(req.Name)
	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}
	sm := &model.SocialMedia{Name: name, Link: req.Link}
	if err := s.repo.Create(ctx, sm); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict(fmt.Sprintf("Media sosial %s sudah terdaftar. Pilih tipe yang berbeda.", name))
		}
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Social media created").String("name", name).Log()
	return sm, nil
}

func (s *SocialMediaService) Update(ctx context.Context, id uint, req *dto.UpdateSocialMediaRequest) (*model.SocialMedia, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateSocialMedia")

	sm, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		name := strings.ToUpper(*req.Name)
		if name != sm.Name {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return nil, err
			}
			sm.Name = name
		}
	}
	setIf(&sm.Link, req.Link)

	if err := s.repo.Update(ctx, sm); err != nil {
		return nil, s.mapError(ctx, err)
	}
	return sm, nil
}

// Post media sosial

const (
	socialPostFolder    = "social-media-posts"
	msgSocialPostUpload = "Gagal mengunggah gambar postingan."
)

type SocialMediaPostService struct {
	resource[model.SocialMediaPost]
	files files
}

func NewSocialMediaPostService(repo CrudStore[model.SocialMediaPost], fs storage.Storage) *SocialMediaPostService {
	return &SocialMediaPostService{
		resource: newResource(repo, "social media post", msgSocialPostNotFound),
		files:    files{storage: fs},
	}
}

func (s *SocialMediaPostService) Create(ctx context.Context, actorID uint, req *dto.SocialMediaPostRequest, file *multipart.FileHeader) (*model.SocialMediaPost, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateSocialMediaPost")

	post := &model.SocialMediaPost{
		Platform:    strings.ToUpper(req.Platform),
		PostLink:    req.PostLink,
		Image:       req.Image,
		CreatedByID: &actorID,
		UpdatedByID: &actorID,
	}
	fallback := post.Image
	if file != nil {
		fallback = ""
	}
	err := s.files.withOptionalFile(ctx, file, storage.ImageRule, socialPostFolder, msgSocialPostUpload, fallback, func(url string) error {
		post.Image = url
		return s.store.Create(ctx, post)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return post, nil
}

func (s *SocialMediaPostService) Update(ctx context.Context, id, actorID uint, req *dto.UpdateSocialMediaPostRequest, file *multipart.FileHeader) (*model.SocialMediaPost, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateSocialMediaPost")

	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := post.Image
	if req.Platform != nil {
		post.Platform = strings.ToUpper(*req.Platform)
	}
	setIf(&post.PostLink, req.PostLink)
	post.UpdatedByID = &actorID

	current := oldImage
	if req.Image != nil && file == nil {
		current = *req.Image
	}
	err = s.files.withOptionalFile(ctx, file, storage.ImageRule, socialPostFolder, msgSocialPostUpload, current, func(url string) error {
		post.Image = url
		return s.store.Update(ctx, post)
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	if file == nil && current != oldImage {
		s.files.discard(ctx, oldImage)
	}
	return post, nil
}

func (s *SocialMediaPostService) Delete(ctx context.Context, id uint) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resource.Delete(ctx, id); err != nil {
		return err
	}
	s.files.discard(ctx, post.Image)
	return nil
}
