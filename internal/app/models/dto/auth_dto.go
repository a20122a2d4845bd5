package dto

import "github.com/emre/yoklama/internal/app/models"

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is the 201 body of POST /register.
type RegisterResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *models.Employee `json:"user"`
}

// LoginResponse is the 200 body of POST /login. Token is additive: the
// original client keeps the profile row as its session, but header-based
// clients can present the JWT instead.
type LoginResponse struct {
	Success bool             `json:"success"`
	User    *models.Employee `json:"user"`
	Token   string           `json:"token,omitempty"`
}
