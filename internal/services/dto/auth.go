package dto

import "jobportal_backend/internal/models"

type RegisterRequest struct {
	Fullname    string `form:"fullname" json:"fullname" validate:"required"`
	Email       string `form:"email" json:"email" validate:"required,email"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" validate:"required"`
	Password    string `form:"password" json:"password" validate:"required"`
	Role        string `form:"role" json:"role" validate:"required,userrole"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Role     string `form:"role" json:"role" validate:"required,userrole"`
}

type LoginResponse struct {
	Token string       `json:"-"`
	User  *models.User `json:"user"`
}
