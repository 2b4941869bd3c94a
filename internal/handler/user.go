package handler

import (
	"net/http"

	"github.com/Payphone-Digital/landing-cms/internal/dto"
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/internal/service"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List() gin.HandlerFunc {
	return listHandler[model.User](h.userService, "ListUsers")
}

func (h *UserHandler) Get() gin.HandlerFunc {
	return getHandler[model.User](h.userService, "GetUser", "User fetched successfully")
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx := requestContext(c, "CreateUser")

	var req dto.CreateUserRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	user, err := h.userService.Create(ctx, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	logger.InfoWithContext(ctx, "User created successfully").
		Uint("user_id", user.ID).
		Log()
	respondData(c, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	ctx := requestContext(c, "UpdateUser")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindBody(c, ctx, &req) {
		return
	}

	user, err := h.userService.Update(ctx, id, &req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "User updated successfully", user)
}

// Delete tidak memakai deleteHandler karena butuh actor untuk cek hapus diri sendiri.
func (h *UserHandler) Delete(c *gin.Context) {
	ctx := requestContext(c, "DeleteUser")

	id, ok := parseID(c, ctx, "id")
	if !ok {
		return
	}
	if err := h.userService.Delete(ctx, id, actorID(c)); err != nil {
		respondError(c, ctx, err)
		return
	}
	respondData(c, http.StatusOK, "User deleted successfully", nil)
}
