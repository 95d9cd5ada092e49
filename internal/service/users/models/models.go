package models

import (
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя.
// Без businessId создаётся новый бизнес, и пользователь становится его администратором
type RegisterRequest struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	BusinessID   *int64 `json:"businessId,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse пользователь для выдачи наружу
type UserResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResponse результат регистрации или входа
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// FromDomain конвертирует доменного пользователя в DTO
func FromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Name:       u.Name,
		Surname:    u.Surname,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt,
	}
}
