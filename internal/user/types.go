package user

import "time"

// User is an account that can own and manage properties.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// --- UseCase Inputs ---

type CreateUserInput struct {
	Email    string   `json:"email"    validate:"required,email,max=255"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles"    validate:"dive,oneof=admin property-manager user"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- UseCase Outputs ---

type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
}
