package service

import (
	"context"
	"mime/multipart"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

// SingletonStore tabel satu baris; Get membuat baris default bila kosong.
type SingletonStore[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, item *T) error
}

func loadSingleton[T any](ctx context.Context, store SingletonStore[T]) (*T, error) {
	item, err := store.Get(ctx)
	if err != nil {
		return nil, mapError(ctx, err, "Data tidak ditemukan.")
	}
	return item, nil
}

// Hero

type HeroService struct {
	store SingletonStore[model.HeroSection]
	files files
}

func NewHeroService(store SingletonStore[model.HeroSection], fs storage.Storage) *HeroService {
	return &HeroService{store: store, files: files{storage: fs}}
}

func (s *HeroService) Get(ctx context.Context) (*model.HeroSection, error) {
	return loadSingleton(ctx, s.store)
}

func (s *HeroService) Update(ctx context.Context, req *dto.HeroRequest) (*model.HeroSection, error) {
	hero, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	setIf(&hero.Heading, req.Heading)
	setIf(&hero.SubHeading, req.SubHeading)
	if req.PathVideo != nil {
		hero.PathVideo = req.PathVideo
	}
	if err := s.store.Update(ctx, hero); err != nil {
		return nil, mapError(ctx, err, "Data tidak ditemukan.")
	}
	return hero, nil
}

func (s *HeroService) UpdateBanner(ctx context.Context, file *multipart.FileHeader) (*model.HeroSection, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateHeroBanner")

	if file == nil {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	hero, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	err = s.files.replace(ctx, file, storage.ImageRule, "hero", "Gagal mengunggah banner.", hero.Banner, func(url string) error {
		hero.Banner = url
		return s.store.Update(ctx, hero)
	})
	if err != nil {
		return nil, mapError(ctx, err, "Data tidak ditemukan.")
	}
	return hero, nil
}

// Struktur organisasi

type StructureService struct {
	store SingletonStore[model.Structure]
	files files
}

func NewStructureService(store SingletonStore[model.Structure], fs storage.Storage) *StructureService {
	return &StructureService{store: store, files: files{storage: fs}}
}

func (s *StructureService) Get(ctx context.Context) (*model.Structure, error) {
	return loadSingleton(ctx, s.store)
}

func (s *StructureService) Update(ctx context.Context, file *multipart.FileHeader) (*model.Structure, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateStructure")

	if file == nil {
		return nil, apperrors.NewBadRequest(MsgNoFileUploaded)
	}
	structure, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	err = s.files.replace(ctx, file, storage.ImageRule, "structures", "Gagal mengunggah gambar struktur.", structure.Image, func(url string) error {
		structure.Image = url
		return s.store.Update(ctx, structure)
	})
	if err != nil {
		return nil, mapError(ctx, err, "Data tidak ditemukan.")
	}
	return structure, nil
}

// Roles & responsibilities

type RolesResponsibilitiesService struct {
	store SingletonStore[model.RolesResponsibilities]
}

func NewRolesResponsibilitiesService(store SingletonStore[model.RolesResponsibilities]) *RolesResponsibilitiesService {
	return &RolesResponsibilitiesService{store: store}
}

func (s *RolesResponsibilitiesService) Get(ctx context.Context) (*model.RolesResponsibilities, error) {
	return loadSingleton(ctx, s.store)
}

func (s *RolesResponsibilitiesService) Update(ctx context.Context, req *dto.RolesResponsibilitiesRequest) (*model.RolesResponsibilities, error) {
	item, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.Roles != nil {
		item.Roles = sanitize.HTML(*req.Roles)
	}
	if req.Responsibilities != nil {
		item.Responsibilities = sanitize.HTML(*req.Responsibilities)
	}
	if err := s.store.Update(ctx, item); err != nil {
		return nil, mapError(ctx, err, "Data tidak ditemukan.")
	}
	return item, nil
}
