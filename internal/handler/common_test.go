package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type item struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type itemRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=2"`
}

// fakeReader mencatat params terakhir supaya test bisa memeriksa hasil bind.
type fakeReader struct {
	items   map[uint]item
	params  query.Params
	err     error
	deleted []uint
}

func (f *fakeReader) List(_ context.Context, params query.Params) (*query.Page[item], error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	var data []item
	for _, it := range f.items {
		data = append(data, it)
	}
	return query.NewPage(data, int64(len(data)), params), nil
}

func (f *fakeReader) Get(_ context.Context, id uint) (*item, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("Item not found")
	}
	return &it, nil
}

func (f *fakeReader) Delete(_ context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.NewNotFound("Item not found")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newItemRouter(svc *fakeReader) *gin.Engine {
	r := gin.New()
	r.GET("/items", listHandler[item](svc, "ListItems"))
	r.GET("/items/:id", getHandler[item](svc, "GetItem", "Item ditemukan."))
	r.DELETE("/items/:id", deleteHandler(svc, "DeleteItem"))
	r.POST("/items", createHandler("CreateItem", "Item dibuat.", func(_ *gin.Context, _ context.Context, req *itemRequest) (*item, error) {
		if req.Name == "taken" {
			return nil, apperrors.NewConflict("Item already exists")
		}
		return &item{ID: 9, Name: req.Name}, nil
	}))
	r.PUT("/items/:id", updateHandler("UpdateItem", "Item diubah.", func(c *gin.Context, _ context.Context, id uint, req *itemRequest) (*item, error) {
		return &item{ID: id, Name: req.Name}, nil
	}))
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListHandler_QueryBinding(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantPage   int
		wantLimit  int
	}{
		{"defaults", "/items", http.StatusOK, 1, 10},
		{"explicit", "/items?page=2&limit=5&search=abc", http.StatusOK, 2, 5},
		{"limit zero rejected", "/items?limit=0", http.StatusBadRequest, 0, 0},
		{"limit above max rejected", "/items?limit=101", http.StatusBadRequest, 0, 0},
		{"page zero rejected", "/items?page=0", http.StatusBadRequest, 0, 0},
		{"non numeric page rejected", "/items?page=abc", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReader{items: map[uint]item{1: {ID: 1, Name: "satu"}}}
			w := serve(newItemRouter(svc), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, constants.MsgInvalidQuery, decode(t, w)["message"])
				return
			}
			assert.Equal(t, tt.wantPage, svc.params.Page)
			assert.Equal(t, tt.wantLimit, svc.params.Limit)
			assert.Equal(t, "http://example.com/items", svc.params.BaseURL)
		})
	}
}

func TestListHandler_ForwardedProto(t *testing.T) {
	svc := &fakeReader{}
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set(constants.HeaderXForwardedProto, "https")
	w := httptest.NewRecorder()
	newItemRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com/items", svc.params.BaseURL)
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"found", "/items/1", nil, http.StatusOK, "Item ditemukan."},
		{"not found", "/items/2", nil, http.StatusNotFound, "Item not found"},
		{"zero id", "/items/0", nil, http.StatusBadRequest, constants.MsgInvalidID},
		{"non numeric id", "/items/abc", nil, http.StatusBadRequest, constants.MsgInvalidID},
		{"internal error hidden", "/items/1", errors.New("pq: connection reset"), http.StatusInternalServerError, constants.MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReader{items: map[uint]item{1: {ID: 1, Name: "satu"}}, err: tt.err}
			w := serve(newItemRouter(svc), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantMsg, body["message"])
			if tt.wantStatus == http.StatusOK {
				data := body["data"].(map[string]any)
				assert.Equal(t, "satu", data["name"])
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	svc := &fakeReader{items: map[uint]item{3: {ID: 3}}}
	r := newItemRouter(svc)

	w := serve(r, http.MethodDelete, "/items/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constants.MsgDeleted, decode(t, w)["message"])
	assert.Equal(t, []uint{3}, svc.deleted)

	w = serve(r, http.MethodDelete, "/items/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAndUpdateHandler(t *testing.T) {
	r := newItemRouter(&fakeReader{})

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"create", http.MethodPost, "/items", `{"name":"baru"}`, http.StatusCreated},
		{"create validation", http.MethodPost, "/items", `{"name":"x"}`, http.StatusBadRequest},
		{"create malformed json", http.MethodPost, "/items", `{"name":`, http.StatusBadRequest},
		{"create conflict", http.MethodPost, "/items", `{"name":"taken"}`, http.StatusConflict},
		{"update", http.MethodPut, "/items/5", `{"name":"ubah"}`, http.StatusOK},
		{"update bad id", http.MethodPut, "/items/x", `{"name":"ubah"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	w := serve(r, http.MethodPut, "/items/5", `{"name":"ubah"}`)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(5), data["id"])
	assert.Equal(t, "ubah", data["name"])
}

func TestActorID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, actorID(c))

	c.Set(constants.GinKeyUserID, uint(7))
	assert.Equal(t, uint(7), actorID(c))

	c.Set(constants.GinKeyUserID, "7")
	assert.Zero(t, actorID(c))
}
