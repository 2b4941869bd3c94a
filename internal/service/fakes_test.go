package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore CrudStore in-memory. Item disimpan sebagai salinan sehingga
// perubahan di service hanya terlihat setelah Update.
type memStore[T any] struct {
	mu     sync.Mutex
	items  map[uint]T
	nextID uint
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{items: make(map[uint]T), nextID: 1}
}

func idOf[T any](item *T) uint {
	return uint(reflect.ValueOf(item).Elem().FieldByName("ID").Uint())
}

func setID[T any](item *T, id uint) {
	reflect.ValueOf(item).Elem().FieldByName("ID").SetUint(uint64(id))
}

func (m *memStore[T]) Create(_ context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := idOf(item)
	if id == 0 {
		id = m.nextID
		setID(item, id)
	}
	if id >= m.nextID {
		m.nextID = id + 1
	}
	m.items[id] = *item
	return nil
}

func (m *memStore[T]) FindByID(_ context.Context, id uint) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (m *memStore[T]) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := m.FindByID(ctx, id)
	return err == nil, nil
}

func (m *memStore[T]) Update(_ context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := idOf(item)
	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.items[id] = *item
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memStore[T]) all() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]uint, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.items[id])
	}
	return out
}

func (m *memStore[T]) List(_ context.Context, params query.Params, _ ...query.Scope) (*query.Page[T], error) {
	items := m.all()
	params = params.Normalize()
	start := min(params.Offset(), len(items))
	end := min(start+params.Limit, len(items))
	return query.NewPage(items[start:end], int64(len(items)), params), nil
}

// fakeTx menjalankan fn langsung dan mencatat jumlah transaksi.
type fakeTx struct {
	calls int
}

func (f *fakeTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// fakeStorage storage in-memory; URL miliknya berawalan mem://.
type fakeStorage struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
	failNext bool
	seq      int
}

func (f *fakeStorage) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failNext {
		f.failNext = false
		return "", errors.New("bucket unavailable")
	}
	f.seq++
	url := fmt.Sprintf("mem://%s/%d-%s", folder, f.seq, file.Filename)
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	return nil
}

func (f *fakeStorage) IsManaged(url string) bool {
	return strings.HasPrefix(url, "mem://")
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

// Header minimal yang lolos sniff isi file.
var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	webpBytes = []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")
	pdfBytes  = []byte("%PDF-1.7\n")
)

func images(t *testing.T, n int) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, 0, n)
	for i := range n {
		out = append(out, fileHeader(t, fmt.Sprintf("photo-%d.jpg", i), jpegBytes))
	}
	return out
}

// Store khusus per entitas

type fakeDirectorStore struct {
	*memStore[model.DirectorProfile]
}

// orderTaken meniru unique index pada kolom order.
func (f fakeDirectorStore) orderTaken(order int, exceptID uint) bool {
	for _, p := range f.all() {
		if p.ID != exceptID && p.Order == order {
			return true
		}
	}
	return false
}

func (f fakeDirectorStore) Create(ctx context.Context, p *model.DirectorProfile) error {
	if f.orderTaken(p.Order, 0) {
		return gorm.ErrDuplicatedKey
	}
	return f.memStore.Create(ctx, p)
}

func (f fakeDirectorStore) Update(ctx context.Context, p *model.DirectorProfile) error {
	if f.orderTaken(p.Order, p.ID) {
		return gorm.ErrDuplicatedKey
	}
	return f.memStore.Update(ctx, p)
}

func (f fakeDirectorStore) FindFromOrder(_ context.Context, from int, excludeID uint) ([]model.DirectorProfile, error) {
	var out []model.DirectorProfile
	for _, p := range f.all() {
		if p.Order >= from && p.ID != excludeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order > out[j].Order })
	return out, nil
}

func (f fakeDirectorStore) UpdateOrder(ctx context.Context, id uint, order int) error {
	if f.orderTaken(order, id) {
		return gorm.ErrDuplicatedKey
	}
	p, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Order = order
	return f.memStore.Update(ctx, p)
}

type fakeNewsStore struct {
	*memStore[model.News]
	tags map[uint][]uint
}

func newFakeNewsStore() *fakeNewsStore {
	return &fakeNewsStore{memStore: newMemStore[model.News](), tags: map[uint][]uint{}}
}

func (f *fakeNewsStore) FindBySlug(_ context.Context, slug string) (*model.News, error) {
	for _, n := range f.all() {
		if n.Slug == slug {
			return &n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNewsStore) SlugExists(_ context.Context, slug string, excludeID uint) (bool, error) {
	for _, n := range f.all() {
		if n.Slug == slug && n.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNewsStore) ListPublished(ctx context.Context, params query.Params) (*query.Page[model.News], error) {
	var out []model.News
	for _, n := range f.all() {
		if n.Status == model.NewsStatusPublished {
			out = append(out, n)
		}
	}
	return query.NewPage(out, int64(len(out)), params), nil
}

func (f *fakeNewsStore) ListByCategory(_ context.Context, categoryID uint, params query.Params, onlyPublished bool) (*query.Page[model.News], error) {
	var out []model.News
	for _, n := range f.all() {
		if n.CategoryID == categoryID && (!onlyPublished || n.Status == model.NewsStatusPublished) {
			out = append(out, n)
		}
	}
	return query.NewPage(out, int64(len(out)), params), nil
}

func (f *fakeNewsStore) ReplaceTags(_ context.Context, newsID uint, tagIDs []uint) error {
	f.tags[newsID] = append([]uint(nil), tagIDs...)
	return nil
}

func (f *fakeNewsStore) DeleteTagLinks(_ context.Context, newsID uint) error {
	delete(f.tags, newsID)
	return nil
}

type fakeTagFinder struct {
	tags map[uint]model.Tag
}

func (f fakeTagFinder) FindByIDs(_ context.Context, ids []uint) ([]model.Tag, error) {
	var out []model.Tag
	for _, id := range ids {
		if t, ok := f.tags[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeGalleryStore struct {
	*memStore[model.Gallery]
	images *memStore[model.GalleryImage]
	locks  int
}

func newFakeGalleryStore() *fakeGalleryStore {
	return &fakeGalleryStore{memStore: newMemStore[model.Gallery](), images: newMemStore[model.GalleryImage]()}
}

func (f *fakeGalleryStore) FindByID(ctx context.Context, id uint) (*model.Gallery, error) {
	g, err := f.memStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Images, _ = f.ListImages(ctx, id)
	return g, nil
}

func (f *fakeGalleryStore) LockByID(ctx context.Context, id uint) (*model.Gallery, error) {
	f.locks++
	return f.memStore.FindByID(ctx, id)
}

func (f *fakeGalleryStore) CountImages(ctx context.Context, galleryID uint) (int64, error) {
	imgs, _ := f.ListImages(ctx, galleryID)
	return int64(len(imgs)), nil
}

func (f *fakeGalleryStore) ListImages(_ context.Context, galleryID uint) ([]model.GalleryImage, error) {
	var out []model.GalleryImage
	for _, img := range f.images.all() {
		if img.GalleryID == galleryID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeGalleryStore) CreateImages(ctx context.Context, imgs []model.GalleryImage) error {
	for i := range imgs {
		if err := f.images.Create(ctx, &imgs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeGalleryStore) FindImage(ctx context.Context, imageID uint) (*model.GalleryImage, error) {
	return f.images.FindByID(ctx, imageID)
}

func (f *fakeGalleryStore) DeleteImage(ctx context.Context, imageID uint) error {
	return f.images.Delete(ctx, imageID)
}

func (f *fakeGalleryStore) DeleteImages(ctx context.Context, galleryID uint) error {
	imgs, _ := f.ListImages(ctx, galleryID)
	for _, img := range imgs {
		_ = f.images.Delete(ctx, img.ID)
	}
	return nil
}

type fakeContactStore struct {
	*memStore[model.Contact]
}

func (f fakeContactStore) FindByKey(_ context.Context, key string) (*model.Contact, error) {
	for _, c := range f.all() {
		if c.Key == key {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeContactStore) FindByKeys(_ context.Context, keys []string) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.all() {
		for _, k := range keys {
			if c.Key == k {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

type fakeSocialMediaStore struct {
	*memStore[model.SocialMedia]
}

func (f fakeSocialMediaStore) FindByName(_ context.Context, name string) (*model.SocialMedia, error) {
	for _, sm := range f.all() {
		if sm.Name == name {
			return &sm, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserStore struct {
	*memStore[model.User]
}

func (f fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUserStore) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, u := range f.all() {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeUserStore) IncrementTokenVersion(ctx context.Context, id uint) error {
	u, err := f.FindByID(ctx, id)
	if err != nil {
		return err
	}
	u.TokenVersion++
	return f.Update(ctx, u)
}

type fakeSingleton[T any] struct {
	item T
}

func (f *fakeSingleton[T]) Get(context.Context) (*T, error) {
	cp := f.item
	return &cp, nil
}

func (f *fakeSingleton[T]) Update(_ context.Context, item *T) error {
	f.item = *item
	return nil
}

func defaultParams() query.Params {
	return query.Params{BaseURL: "http://localhost/api/v1/test"}.Normalize()
}

// failAfter meneruskan ok upload pertama lalu gagal.
type failAfter struct {
	*fakeStorage
	ok int
}

func (f *failAfter) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if f.ok == 0 {
		return "", errors.New("bucket unavailable")
	}
	f.ok--
	return f.fakeStorage.Upload(ctx, file, folder)
}
