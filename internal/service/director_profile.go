package service

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/sanitize"
	"github.com/Payphone-Digital/landing-cms/pkg/storage"
)

const (
	directorFolder       = "director-profiles"
	msgDirectorNotFound  = "Profil direktur tidak ditemukan."
	msgDirectorUploadErr = "Gagal mengunggah foto direktur."
)

type DirectorProfileStore interface {
	CrudStore[model.DirectorProfile]
	FindFromOrder(ctx context.Context, from int, excludeID uint) ([]model.DirectorProfile, error)
	UpdateOrder(ctx context.Context, id uint, order int) error
}

type DirectorProfileService struct {
	resource[model.DirectorProfile]
	repo  DirectorProfileStore
	tx    Transactor
	files files
	now   func() time.Time
}

func NewDirectorProfileService(repo DirectorProfileStore, tx Transactor, fs storage.Storage) *DirectorProfileService {
	return &DirectorProfileService{
		resource: newResource[model.DirectorProfile](repo, "director profile", msgDirectorNotFound),
		repo:     repo,
		tx:       tx,
		files:    files{storage: fs},
		now:      time.Now,
	}
}

func (s *DirectorProfileService) endYear(v *int) int {
	if v == nil {
		return s.now().Year()
	}
	return *v
}

// reorder menggeser profil dengan order >= newOrder sebanyak satu posisi,
// mulai dari order terbesar. Harus dipanggil di dalam transaksi.
func (s *DirectorProfileService) reorder(ctx context.Context, newOrder int, excludeID uint) error {
	profiles, err := s.repo.FindFromOrder(ctx, newOrder, excludeID)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := s.repo.UpdateOrder(ctx, p.ID, p.Order+1); err != nil {
			return err
		}
	}
	if len(profiles) > 0 {
		logger.DebugWithContext(ctx, "Director profiles shifted").
			Int("from_order", newOrder).
			Int("shifted", len(profiles)).
			Log()
	}
	return nil
}

func (s *DirectorProfileService) Create(ctx context.Context, req *dto.DirectorProfileRequest, picture *multipart.FileHeader) (*model.DirectorProfile, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "CreateDirectorProfile")

	profile := &model.DirectorProfile{
		Order:     *req.Order,
		BeginYear: req.BeginYear,
		EndYear:   s.endYear(req.EndYear),
		Name:      strings.TrimSpace(req.Name),
		Detail:    sanitize.HTML(req.Detail),
	}

	err := s.files.withOptionalFile(ctx, picture, storage.PictureRule, directorFolder, msgDirectorUploadErr, "", func(url string) error {
		profile.Picture = url
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			if err := s.reorder(ctx, profile.Order, 0); err != nil {
				return err
			}
			return s.repo.Create(ctx, profile)
		})
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}

	logger.InfoWithContext(ctx, "Director profile created").
		Uint("id", profile.ID).
		Int("order", profile.Order).
		Log()
	return profile, nil
}

func (s *DirectorProfileService) Update(ctx context.Context, id uint, req *dto.UpdateDirectorProfileRequest, picture *multipart.FileHeader) (*model.DirectorProfile, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "UpdateDirectorProfile")

	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	target := profile.Order
	setIf(&target, req.Order)
	moving := target != profile.Order

	setIf(&profile.BeginYear, req.BeginYear)
	profile.EndYear = s.endYear(req.EndYear)
	if req.Name != nil {
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Detail != nil {
		profile.Detail = sanitize.HTML(*req.Detail)
	}

	err = s.files.withOptionalFile(ctx, picture, storage.PictureRule, directorFolder, msgDirectorUploadErr, profile.Picture, func(url string) error {
		profile.Picture = url
		return s.tx.InTx(ctx, func(ctx context.Context) error {
			if moving {
				// parkir di order negatif supaya unique index tidak bentrok
				if err := s.repo.UpdateOrder(ctx, id, -int(id)); err != nil {
					return err
				}
				if err := s.reorder(ctx, target, id); err != nil {
					return err
				}
			}
			profile.Order = target
			return s.repo.Update(ctx, profile)
		})
	})
	if err != nil {
		return nil, s.mapError(ctx, err)
	}
	return profile, nil
}

func (s *DirectorProfileService) Delete(ctx context.Context, id uint) error {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resource.Delete(ctx, id); err != nil {
		return err
	}
	s.files.discard(ctx, profile.Picture)
	return nil
}
