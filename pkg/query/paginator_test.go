package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	items    []int
	countErr error
	findErr  error
	offset   int
	limit    int
}

func (s *sliceSource) FindMany(_ context.Context, offset, limit int) ([]int, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	s.offset, s.limit = offset, limit
	if offset >= len(s.items) {
		return nil, nil
	}
	end := min(offset+limit, len(s.items))
	return s.items[offset:end], nil
}

func (s *sliceSource) Count(context.Context) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.items)), nil
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_MetaAndLinks(t *testing.T) {
	const base = "http://localhost/api/v1/news"

	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		wantPages  int
		wantData   []int
		wantFirst  bool
		wantPrev   bool
		wantNext   bool
		wantOffset int
	}{
		{"first page", 25, 1, 10, 3, seq(10), true, false, true, 0},
		{"middle page", 25, 2, 10, 3, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, true, true, true, 10},
		{"last page", 25, 3, 10, 3, []int{21, 22, 23, 24, 25}, true, true, false, 20},
		{"exact multiple", 20, 2, 10, 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, true, true, false, 10},
		{"empty", 0, 1, 10, 0, []int{}, false, false, false, 0},
		{"beyond last", 5, 4, 2, 3, []int{}, true, true, false, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &sliceSource{items: seq(tt.total)}
			page, err := Paginate[int](context.Background(), src, Params{Page: tt.page, Limit: tt.limit, BaseURL: base})
			require.NoError(t, err)

			assert.Equal(t, tt.wantData, page.Data)
			assert.Equal(t, tt.page, page.Meta.CurrentPage)
			assert.Equal(t, tt.limit, page.Meta.PerPage)
			assert.Equal(t, int64(tt.total), page.Meta.TotalItems)
			assert.Equal(t, tt.wantPages, page.Meta.TotalPages)
			assert.Equal(t, tt.wantOffset, src.offset)

			assert.Equal(t, tt.wantFirst, page.Links.First != nil)
			assert.Equal(t, tt.wantFirst, page.Links.Last != nil)
			assert.Equal(t, tt.wantPrev, page.Links.Previous != nil)
			assert.Equal(t, tt.wantNext, page.Links.Next != nil)
		})
	}
}

func TestPaginate_LinkFormat(t *testing.T) {
	src := &sliceSource{items: seq(30)}
	page, err := Paginate[int](context.Background(), src, Params{Page: 2, Limit: 10, BaseURL: "http://host/api/v1/faq"})
	require.NoError(t, err)

	assert.Equal(t, "http://host/api/v1/faq?page=1&limit=10", *page.Links.First)
	assert.Equal(t, "http://host/api/v1/faq?page=1&limit=10", *page.Links.Previous)
	assert.Equal(t, "http://host/api/v1/faq?page=3&limit=10", *page.Links.Next)
	assert.Equal(t, "http://host/api/v1/faq?page=3&limit=10", *page.Links.Last)
}

func TestPaginate_LinksKeepQuery(t *testing.T) {
	src := &sliceSource{items: seq(30)}
	page, err := Paginate[int](context.Background(), src, Params{
		Page: 1, Limit: 10, BaseURL: "/news", Search: "rapat kerja", SortBy: "createdAt:desc",
	})
	require.NoError(t, err)

	assert.Equal(t, "/news?page=2&limit=10&search=rapat+kerja&sortBy=createdAt%3Adesc", *page.Links.Next)
}

func TestPaginate_Defaults(t *testing.T) {
	src := &sliceSource{items: seq(15)}
	page, err := Paginate[int](context.Background(), src, Params{})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.Equal(t, 10, page.Meta.PerPage)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.Equal(t, 10, src.limit)
}

func TestPaginate_ClampsLimit(t *testing.T) {
	src := &sliceSource{items: seq(3)}
	page, err := Paginate[int](context.Background(), src, Params{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, page.Meta.PerPage)
}

func TestPaginate_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Paginate[int](context.Background(), &sliceSource{findErr: boom}, Params{})
	assert.ErrorIs(t, err, boom)

	_, err = Paginate[int](context.Background(), &sliceSource{countErr: boom}, Params{})
	assert.ErrorIs(t, err, boom)
}
