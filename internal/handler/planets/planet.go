package planets

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
	listPlanets   = store.ListPlanets
	getPlanetByID = store.GetPlanetByID
)

var errPlanetNotFound = errs.New("Planet not found", http.StatusNotFound)

// ListPlanetsHandler 列出所有星球
// @Summary     List planets
// @Tags        planets
// @Produce     json
// @Success     200 {array}  api.PlanetResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /planets [get]
func ListPlanetsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		planets, err := listPlanets(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewPlanetResponses(planets))
	}
}

// GetPlanetHandler 取得單一星球
// @Summary     Get a planet
// @Tags        planets
// @Produce     json
// @Param       id  path     int true "星球 ID"
// @Success     200 {object} api.PlanetResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /planets/{id} [get]
func GetPlanetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c, "id")
		if err != nil {
			return err
		}

		planet, err := getPlanetByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return errPlanetNotFound
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewPlanetResponse(*planet))
	}
}
