package userRequest

import "eventRegistry/internal/models"

// UserRequest is the user profile accepted by user creation and by event
// registration.
type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (r UserRequest) User() models.User {
	return models.User{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
	}
}
