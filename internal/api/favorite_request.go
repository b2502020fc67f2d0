// File: internal/api/favorite_request.go
package api

import (
	"net/http"

	"starwars-api/internal/errs"
)

// FavoriteRequest carries the user a favorite is read or toggled for.
// swagger:model api.FavoriteRequest
type FavoriteRequest struct {
	UserID *int `json:"user_id" validate:"required" example:"1"`
}

var ErrMissingUserID = errs.New("Missing user_id", http.StatusBadRequest)
