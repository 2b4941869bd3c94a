package dto

type CreateUserRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" binding:"required,email,max=255"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=100"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" form:"name" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=8,max=100"`
}

type UserLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=100"`
}
