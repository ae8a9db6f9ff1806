package handler

import "github.com/burger-queen/ordering-api/internal/core/domain"

type createUserRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// userResponse is the public view of a user; the password hash never leaves
// the domain layer.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

type messageResponse struct {
	Message string `json:"message"`
}
