// File: internal/api/user_response.go
package api

import "starwars-api/internal/model"

// UserResponse never carries the password.
// swagger:model api.UserResponse
type UserResponse struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"luke@tatooine.com"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
