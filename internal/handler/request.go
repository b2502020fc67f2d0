// File: internal/handler/request.go
package handler

import (
	"strconv"

	"starwars-api/internal/api"

	"github.com/labstack/echo/v4"
)

// BindUserID reads user_id from the JSON body. A body that cannot be bound
// or lacks the field is reported as api.ErrMissingUserID.
func BindUserID(c echo.Context) (int, error) {
	var req api.FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return 0, api.ErrMissingUserID
	}
	if err := c.Validate(&req); err != nil {
		return 0, api.ErrMissingUserID
	}
	return *req.UserID, nil
}

// PathID parses the named path parameter. Non-integer ids are treated like
// an unmatched route.
func PathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
