package handler

import "github.com/ashuestate/realty-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username    string `json:"username"    validate:"required,min=3,max=32"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=8,max=100"`
	AccountType string `json:"accountType" validate:"required,oneof=buyer owner agent"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
