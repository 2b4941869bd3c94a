package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialMedia_NameConflict(t *testing.T) {
	ctx := context.Background()
	svc := NewSocialMediaService(fakeSocialMediaStore{memStore: newMemStore[model.SocialMedia]()})

	ig, err := svc.Create(ctx, &dto.SocialMediaRequest{Name: "instagram", Link: "https://instagram.com/x"})
	require.NoError(t, err)
	assert.Equal(t, model.SocialMediaInstagram, ig.Name)

	_, err = svc.Create(ctx, &dto.SocialMediaRequest{Name: "INSTAGRAM", Link: "https://instagram.com/y"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperrors.ToHTTPStatus(err))
	assert.Equal(t, "Media sosial INSTAGRAM sudah terdaftar. Pilih tipe yang berbeda.", apperrors.GetErrorMessage(err))

	yt, err := svc.Create(ctx, &dto.SocialMediaRequest{Name: "YOUTUBE", Link: "https://youtube.com/x"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, yt.ID, &dto.UpdateSocialMediaRequest{Name: ptr("INSTAGRAM")})
	assert.Equal(t, http.StatusConflict, apperrors.ToHTTPStatus(err))

	// nama sendiri boleh dikirim ulang
	_, err = svc.Update(ctx, ig.ID, &dto.UpdateSocialMediaRequest{Name: ptr("INSTAGRAM"), Link: ptr("https://instagram.com/z")})
	assert.NoError(t, err)
}

func TestStatistic_CategoryMustExist(t *testing.T) {
	ctx := context.Background()
	categories := newMemStore[model.StatisticCategory]()
	require.NoError(t, categories.Create(ctx, &model.StatisticCategory{Name: "Layanan"}))
	svc := NewStatisticService(newMemStore[model.Statistic](), categories)

	_, err := svc.Create(ctx, &dto.StatisticRequest{Name: "Pengguna", Number: ptr(10), CategoryID: 4})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.ToHTTPStatus(err))
	assert.Equal(t, "Category with id 4 does not exist", apperrors.GetErrorMessage(err))

	stat, err := svc.Create(ctx, &dto.StatisticRequest{Name: "Pengguna", Number: ptr(0), CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, stat.Number)

	_, err = svc.Get(ctx, 42)
	assert.Equal(t, "Statistic not found", apperrors.GetErrorMessage(err))
}

func TestEntityNotFoundMessages(t *testing.T) {
	ctx := context.Background()
	fs := &fakeStorage{}

	tests := []struct {
		name string
		get  func() error
		want string
	}{
		{"faq", func() error { _, err := NewFaqService(newMemStore[model.Faq]()).Get(ctx, 1); return err }, "FAQ tidak ditemukan."},
		{"history", func() error { _, err := NewHistoryService(newMemStore[model.History]()).Get(ctx, 1); return err }, "History tidak ditemukan."},
		{"service", func() error {
			_, err := NewServiceItemService(newMemStore[model.ServiceItem](), fs).Get(ctx, 1)
			return err
		}, "Layanan tidak ditemukan."},
		{"announcement", func() error {
			_, err := NewAnnouncementService(newMemStore[model.Announcement](), fs).Get(ctx, 1)
			return err
		}, "Pengumuman tidak ditemukan."},
		{"regulation", func() error {
			_, err := NewRegulationService(newMemStore[model.Regulation](), fs).Get(ctx, 1)
			return err
		}, "Regulasi tidak ditemukan."},
		{"social post", func() error {
			_, err := NewSocialMediaPostService(newMemStore[model.SocialMediaPost](), fs).Get(ctx, 1)
			return err
		}, "Social media post not found."},
		{"statistic category", func() error {
			_, err := NewStatisticCategoryService(newMemStore[model.StatisticCategory]()).Get(ctx, 1)
			return err
		}, "Category not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.get()
			require.Error(t, err)
			assert.Equal(t, http.StatusNotFound, apperrors.ToHTTPStatus(err))
			assert.Equal(t, tt.want, apperrors.GetErrorMessage(err))
		})
	}
}

func TestAnnouncement_AttachmentLifecycle(t *testing.T) {
	ctx := context.Background()
	fs := &fakeStorage{}
	svc := NewAnnouncementService(newMemStore[model.Announcement](), fs)

	created, err := svc.Create(ctx, 1, &dto.DocumentRequest{Title: "Libur", Description: "Kantor tutup"},
		fileHeader(t, "surat.pdf", pdfBytes))
	require.NoError(t, err)
	require.NotNil(t, created.Attachment)

	updated, err := svc.UploadAttachment(ctx, created.ID, 2, fileHeader(t, "surat-v2.pdf", pdfBytes))
	require.NoError(t, err)
	assert.Equal(t, "Libur", updated.Title)
	assert.Equal(t, uint(2), *updated.UpdatedByID)
	assert.Equal(t, []string{*created.Attachment}, fs.deleted)

	_, err = svc.UploadAttachment(ctx, created.ID, 2, fileHeader(t, "foto.png", pngBytes))
	assert.Equal(t, http.StatusBadRequest, apperrors.ToHTTPStatus(err))

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Contains(t, fs.deleted, *updated.Attachment)
}

func TestHero_SingletonUpdates(t *testing.T) {
	ctx := context.Background()
	store := &fakeSingleton[model.HeroSection]{item: model.HeroSection{Heading: "Initial Heading", SubHeading: "Initial Sub Heading"}}
	fs := &fakeStorage{}
	svc := NewHeroService(store, fs)

	hero, err := svc.Update(ctx, &dto.HeroRequest{Heading: ptr("Selamat Datang")})
	require.NoError(t, err)
	assert.Equal(t, "Selamat Datang", hero.Heading)
	assert.Equal(t, "Initial Sub Heading", hero.SubHeading)

	_, err = svc.UpdateBanner(ctx, nil)
	assert.Equal(t, "No file uploaded.", apperrors.GetErrorMessage(err))

	hero, err = svc.UpdateBanner(ctx, fileHeader(t, "banner.webp", webpBytes))
	require.NoError(t, err)
	assert.Equal(t, fs.uploaded[0], store.item.Banner)
	assert.Equal(t, "Selamat Datang", hero.Heading)
}
