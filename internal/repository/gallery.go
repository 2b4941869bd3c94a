package repository

import (
	"context"
	"time"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var gallerySpec = query.Spec{
	Searchable: []string{"title", "description"},
	Sortable:   map[string]string{"title": "title"},
}

type GalleryRepository struct {
	baseRepository[model.Gallery]
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{baseRepository: newBase[model.Gallery](db, "gallery", gallerySpec, "Images")}
}

// LockByID SELECT ... FOR UPDATE pada baris galeri. Hanya bermakna di dalam
// transaksi; dipakai agar penambahan gambar paralel tidak melewati batas.
func (r *GalleryRepository) LockByID(ctx context.Context, id uint) (*model.Gallery, error) {
	ctx = r.start(ctx, "LockByID")
	started := time.Now()

	var gallery model.Gallery
	err := r.conn(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&gallery, id).Error
	r.finish(ctx, started, err)
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepository) CountImages(ctx context.Context, galleryID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&model.GalleryImage{}).Where("gallery_id = ?", galleryID).Count(&count).Error
	return count, err
}

func (r *GalleryRepository) ListImages(ctx context.Context, galleryID uint) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	err := r.conn(ctx).Where("gallery_id = ?", galleryID).Order("id").Find(&images).Error
	return images, err
}

func (r *GalleryRepository) CreateImages(ctx context.Context, images []model.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}
	ctx = r.start(ctx, "CreateImages")
	started := time.Now()

	err := r.conn(ctx).Create(&images).Error
	r.finish(ctx, started, err)
	return err
}

func (r *GalleryRepository) FindImage(ctx context.Context, imageID uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.conn(ctx).First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GalleryRepository) DeleteImage(ctx context.Context, imageID uint) error {
	result := r.conn(ctx).Delete(&model.GalleryImage{}, imageID)
	if result.Error == nil && result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return result.Error
}

func (r *GalleryRepository) DeleteImages(ctx context.Context, galleryID uint) error {
	return r.conn(ctx).Where("gallery_id = ?", galleryID).Delete(&model.GalleryImage{}).Error
}
