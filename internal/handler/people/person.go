package people

import (
	"errors"
	"net/http"

	"starwars-api/internal/api"
	"starwars-api/internal/database"
	"starwars-api/internal/errs"
	"starwars-api/internal/handler"
	"starwars-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPeople    = store.ListPeople
	getPersonByID = store.GetPersonByID
)

var errPersonNotFound = errs.New("Person not found", http.StatusNotFound)

// ListPeopleHandler 列出所有角色
// @Summary     List people
// @Tags        people
// @Produce     json
// @Success     200 {array}  api.PersonResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /people [get]
func ListPeopleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		people, err := listPeople(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewPersonResponses(people))
	}
}

// GetPersonHandler 取得單一角色
// @Summary     Get a person
// @Tags        people
// @Produce     json
// @Param       id  path     int true "角色 ID"
// @Success     200 {object} api.PersonResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /people/{id} [get]
func GetPersonHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "id")
		if err != nil {
			return err
		}

		person, err := getPersonByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return errPersonNotFound
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewPersonResponse(*person))
	}
}
