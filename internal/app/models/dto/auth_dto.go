package dto

import "github.com/yigit/stit/internal/app/models"

// SignupRequest represents the registration form
type SignupRequest struct {
	Username string          `form:"username" binding:"required,max=50,username"`
	Password string          `form:"password" binding:"required"`
	Role     models.RoleType `form:"role" binding:"required,oneof=student faculty"`
	Batch    string          `form:"batch" binding:"max=10"`
	Semester string          `form:"semester" binding:"max=10"`
	Course   string          `form:"course" binding:"max=50"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
