package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryFixture() (*GalleryService, *fakeGalleryStore, *fakeStorage, *fakeTx) {
	store := newFakeGalleryStore()
	files := &fakeStorage{}
	tx := &fakeTx{}
	return NewGalleryService(store, tx, files), store, files, tx
}

func TestGallery_CreateWithImages(t *testing.T) {
	svc, _, files, tx := newGalleryFixture()

	gallery, err := svc.Create(context.Background(), &dto.GalleryRequest{Title: " Kegiatan "}, images(t, 3))
	require.NoError(t, err)

	assert.Equal(t, "Kegiatan", gallery.Title)
	assert.Len(t, gallery.Images, 3)
	assert.Len(t, files.uploaded, 3)
	assert.Equal(t, 1, tx.calls)
}

func TestGallery_CreateRejectsTooManyImages(t *testing.T) {
	svc, store, files, _ := newGalleryFixture()

	_, err := svc.Create(context.Background(), &dto.GalleryRequest{Title: "x"}, images(t, 5))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToHTTPStatus(err))
	assert.Equal(t, "Maksimal 4 gambar per galeri.", apperrors.GetErrorMessage(err))
	assert.Empty(t, files.uploaded)
	assert.Empty(t, store.all())
}

func TestGallery_AddImagesRespectsLimit(t *testing.T) {
	ctx := context.Background()
	svc, store, files, _ := newGalleryFixture()

	gallery, err := svc.Create(ctx, &dto.GalleryRequest{Title: "x"}, images(t, 3))
	require.NoError(t, err)

	_, err = svc.AddImages(ctx, gallery.ID, images(t, 2))
	require.Error(t, err)
	assert.Equal(t, "Galeri sudah memiliki 3 gambar. Maksimal 4 gambar per galeri.", apperrors.GetErrorMessage(err))
	assert.Len(t, files.uploaded, 3)

	updated, err := svc.AddImages(ctx, gallery.ID, images(t, 1))
	require.NoError(t, err)
	assert.Len(t, updated.Images, 4)
	assert.Equal(t, 1, store.locks)
}

func TestGallery_AddImagesErrors(t *testing.T) {
	svc, _, _, _ := newGalleryFixture()

	_, err := svc.AddImages(context.Background(), 1, nil)
	assert.Equal(t, "No file uploaded.", apperrors.GetErrorMessage(err))

	_, err = svc.AddImages(context.Background(), 99, images(t, 1))
	assert.Equal(t, http.StatusNotFound, apperrors.ToHTTPStatus(err))
	assert.Equal(t, "Galeri tidak ditemukan.", apperrors.GetErrorMessage(err))
}

func TestGallery_AddImagesUploadFailureCleansUp(t *testing.T) {
	ctx := context.Background()
	svc, store, files, _ := newGalleryFixture()
	gallery, err := svc.Create(ctx, &dto.GalleryRequest{Title: "x"}, nil)
	require.NoError(t, err)

	// upload kedua gagal: upload pertama harus dihapus
	svc.files.storage = &failAfter{fakeStorage: files, ok: 1}

	_, err = svc.AddImages(ctx, gallery.ID, images(t, 2))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToHTTPStatus(err))
	require.Len(t, files.uploaded, 1)
	assert.Equal(t, files.uploaded, files.deleted)
	count, _ := store.CountImages(ctx, gallery.ID)
	assert.Zero(t, count)
}

func TestGallery_DeleteImage(t *testing.T) {
	ctx := context.Background()
	svc, _, files, _ := newGalleryFixture()

	a, err := svc.Create(ctx, &dto.GalleryRequest{Title: "a"}, images(t, 1))
	require.NoError(t, err)
	b, err := svc.Create(ctx, &dto.GalleryRequest{Title: "b"}, images(t, 1))
	require.NoError(t, err)

	tests := []struct {
		name      string
		galleryID uint
		imageID   uint
		status    int
		message   string
	}{
		{"image not found", a.ID, 999, http.StatusNotFound, "Gambar tidak ditemukan."},
		{"image of other gallery", a.ID, b.Images[0].ID, http.StatusBadRequest, "Gambar tidak ada di galeri ini."},
		{"gallery not found", 999, a.Images[0].ID, http.StatusNotFound, "Galeri tidak ditemukan."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.DeleteImage(ctx, tt.galleryID, tt.imageID)
			require.Error(t, err)
			assert.Equal(t, tt.status, apperrors.ToHTTPStatus(err))
			assert.Equal(t, tt.message, apperrors.GetErrorMessage(err))
		})
	}

	require.NoError(t, svc.DeleteImage(ctx, a.ID, a.Images[0].ID))
	assert.Equal(t, []string{a.Images[0].Image}, files.deleted)
}

func TestGallery_DeleteRemovesImagesAndFiles(t *testing.T) {
	ctx := context.Background()
	svc, store, files, tx := newGalleryFixture()

	gallery, err := svc.Create(ctx, &dto.GalleryRequest{Title: "a"}, images(t, 2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gallery.ID))
	assert.Empty(t, store.images.all())
	assert.ElementsMatch(t, files.uploaded, files.deleted)
	assert.Equal(t, 2, tx.calls)
}
