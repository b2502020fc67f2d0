package users

import (
	"net/http"
	"strconv"

	"starwars-api/internal/api"
	"starwars-api/internal/database"
	"starwars-api/internal/handler"
	"starwars-api/internal/model"
	"starwars-api/internal/service"
	"starwars-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword        = service.HashPassword
	listUsers           = store.ListUsers
	createUser          = store.CreateUser
	listFavoritesByUser = store.ListFavoritesByUser
	bindUserID          = handler.BindUserID
)

// ListUsersHandler 列出所有使用者 (不含密碼)
// @Summary     List users
// @Description 回傳所有使用者的 id 與 email
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /user [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 接收 JSON 並建立新帳號；username 必填但不儲存，password 選填 (bcrypt)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.MessageResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /person [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := api.DecodeCreateUserRequest(c.Request().Body)
		if err != nil {
			return err
		}

		user := &model.User{Email: *req.Email, IsActive: true}
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return err
			}
			user.Password = hash
		}

		if _, err := createUser(c.Request().Context(), db, user); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User created successfully"})
	}
}

// ListFavoritesHandler 列出使用者的最愛
// @Summary     List a user's favorites
// @Description user_id 可放在 query string 或 JSON body
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       user_id query    int                 false "使用者 ID"
// @Param       body    body     api.FavoriteRequest false "使用者 ID"
// @Success     200     {array}  api.FavoriteResponse
// @Failure     400     {object} api.ErrorResponse
// @Failure     500     {object} api.ErrorResponse
// @Router      /users/favorites [get]
func ListFavoritesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := favoritesUserID(c)
		if err != nil {
			return err
		}

		favorites, err := listFavoritesByUser(c.Request().Context(), db, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewFavoriteResponses(favorites))
	}
}

// favoritesUserID prefers the query string and falls back to the body.
func favoritesUserID(c echo.Context) (int, error) {
	if raw := c.QueryParam("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, api.ErrMissingUserID
		}
		return id, nil
	}
	return bindUserID(c)
}
