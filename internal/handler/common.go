package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/Payphone-Digital/landing-cms/internal/constants"
	"github.com/Payphone-Digital/landing-cms/internal/dto"
	apperrors "github.com/Payphone-Digital/landing-cms/internal/errors"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"github.com/Payphone-Digital/landing-cms/pkg/validation"
	"github.com/gin-gonic/gin"
)

// Reader operasi baca yang dimiliki semua service entity.
type Reader[T any] interface {
	List(ctx context.Context, params query.Params) (*query.Page[T], error)
	Get(ctx context.Context, id uint) (*T, error)
}

type Deleter interface {
	Delete(ctx context.Context, id uint) error
}

func requestContext(c *gin.Context, function string) context.Context {
	return ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", function)
}

// requestBaseURL URL absolut request tanpa query, dipakai untuk link paginasi.
func requestBaseURL(c *gin.Context) string {
	return ctxutil.RequestOrigin(c.Request) + c.Request.URL.Path
}

func parseID(c *gin.Context, ctx context.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		logger.WarnWithContext(ctx, "Invalid path id").
			String("param", param).
			String("raw_id", raw).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidID, raw))
		return 0, false
	}
	return uint(id), true
}

func bindListQuery(c *gin.Context, ctx context.Context) (query.Params, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.WarnWithContext(ctx, "Invalid list query").
			String("query", c.Request.URL.RawQuery).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidQuery, validation.Messages(err)))
		return query.Params{}, false
	}
	return q.Params(requestBaseURL(c)), true
}

// bindBody bind JSON atau multipart tergantung Content-Type.
func bindBody(c *gin.Context, ctx context.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		logger.WarnWithContext(ctx, "Invalid request body").Err(err).Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, validation.Messages(err)))
		return false
	}
	return true
}

func respondError(c *gin.Context, ctx context.Context, err error) {
	status := apperrors.ToHTTPStatus(err)
	message := apperrors.GetErrorMessage(err)

	entry := logger.WarnWithContext(ctx, "Request failed")
	if status >= http.StatusInternalServerError {
		entry = logger.ErrorWithContext(ctx, "Request failed")
		message = constants.MsgInternalError
	}
	entry.Int("http_status", status).Err(err).Log()

	c.JSON(status, constants.BuildErrorResponse(message, nil))
}

func respondData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, constants.BuildDataResponse(message, data))
}

// actorID user yang sedang login, diisi middleware auth.
func actorID(c *gin.Context) uint {
	id, _ := c.Get(constants.GinKeyUserID)
	v, _ := id.(uint)
	return v
}

// optionalFile mengembalikan nil bila field tidak dikirim.
func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	file, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return file
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// listHandler GET list generik untuk service yang memenuhi Reader.
func listHandler[T any](svc Reader[T], function string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, function)
		params, ok := bindListQuery(c, ctx)
		if !ok {
			return
		}
		page, err := svc.List(ctx, params)
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getHandler[T any](svc Reader[T], function, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, function)
		id, ok := parseID(c, ctx, "id")
		if !ok {
			return
		}
		item, err := svc.Get(ctx, id)
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		respondData(c, http.StatusOK, message, item)
	}
}

func deleteHandler(svc Deleter, function string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, function)
		id, ok := parseID(c, ctx, "id")
		if !ok {
			return
		}
		if err := svc.Delete(ctx, id); err != nil {
			respondError(c, ctx, err)
			return
		}
		logger.InfoWithContext(ctx, "Resource deleted").Uint("id", id).Log()
		c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
	}
}

// createHandler bind body ke R lalu memanggil create. Dipakai entity yang
// tidak butuh perlakuan khusus di handler.
func createHandler[R, T any](function, message string, create func(c *gin.Context, ctx context.Context, req *R) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, function)

		var req R
		if !bindBody(c, ctx, &req) {
			return
		}
		item, err := create(c, ctx, &req)
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		respondData(c, http.StatusCreated, message, item)
	}
}

func updateHandler[R, T any](function, message string, update func(c *gin.Context, ctx context.Context, id uint, req *R) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestContext(c, function)

		id, ok := parseID(c, ctx, "id")
		if !ok {
			return
		}
		var req R
		if !bindBody(c, ctx, &req) {
			return
		}
		item, err := update(c, ctx, id, &req)
		if err != nil {
			respondError(c, ctx, err)
			return
		}
		respondData(c, http.StatusOK, message, item)
	}
}
