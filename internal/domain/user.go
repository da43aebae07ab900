package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	UserID       string     `json:"id" dynamodbav:"user_id"`
	Phone        string     `json:"phone" dynamodbav:"phone"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	FirstName    *string    `json:"first_name" dynamodbav:"first_name"`
	LastName     *string    `json:"last_name" dynamodbav:"last_name"`
	Birthday     *time.Time `json:"birthday" dynamodbav:"birthday"`
	Role         string     `json:"role" dynamodbav:"role"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
}

type RegisterRequest struct {
	PhoneKey string `json:"phone_key" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,ruphone"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	PhoneKey string `json:"phone_key" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Birthday  *string `json:"birthday"` // expected format: YYYY-MM-DD
}
