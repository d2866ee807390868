package user

import (
	"time"

	"github.com/lightlabcreation/gym-backend/internal/auth"
)

const RoleAdmin = "admin"

type User struct {
	ID           int       `db:"id" json:"id"`
	AdminID      *int      `db:"admin_id" json:"adminId"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	BranchID     *int      `db:"branch_id" json:"branchId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// TenantID is the admin that owns the user's data. Admins own their own.
func (u *User) TenantID() int {
	if u.Role == RoleAdmin || u.AdminID == nil {
		return u.ID
	}
	return *u.AdminID
}

func (u *User) Identity() auth.Identity {
	return auth.Identity{
		UserID:  u.ID,
		AdminID: u.TenantID(),
		Email:   u.Email,
		Role:    u.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"coach@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
