// File: internal/api/create_user_request.go
package api

import (
	"bytes"
	"io"
	"net/http"

	"starwars-api/internal/errs"

	"github.com/goccy/go-json"
)

// CreateUserRequest is the POST /person body. Username is required but not
// stored: users have no username column.
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username *string `json:"username" example:"luke"`
	Email    *string `json:"email" example:"luke@tatooine.com"`
	Password *string `json:"password,omitempty" example:"usetheforce"`
}

var (
	ErrMissingBody     = errs.New("You need to specify the request body as a json object", http.StatusBadRequest)
	ErrMissingUsername = errs.New("You need to specify the username", http.StatusBadRequest)
	ErrMissingEmail    = errs.New("You need to specify the email", http.StatusBadRequest)
)

// DecodeCreateUserRequest parses body and reports the first missing piece:
// the body itself, then username, then email.
func DecodeCreateUserRequest(body io.Reader) (*CreateUserRequest, error) {
	if body == nil {
		return nil, ErrMissingBody
	}
	raw, err := io.ReadAll(body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrMissingBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil, ErrMissingBody
	}

	var req CreateUserRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, ErrMissingBody
	}
	if req.Username == nil {
		return nil, ErrMissingUsername
	}
	if req.Email == nil {
		return nil, ErrMissingEmail
	}
	return &req, nil
}
