package favorites

import (
	"context"
	"errors"
	"net/http"

	"starwars-api/internal/api"
	"starwars-api/internal/database"
	"starwars-api/internal/errs"
	"starwars-api/internal/handler"
	"starwars-api/internal/model"
	"starwars-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	findPlanetFavorite = store.FindPlanetFavorite
	findPersonFavorite = store.FindPersonFavorite
	createFavorite     = store.CreateFavorite
	deleteFavorite     = store.DeleteFavorite
	bindUserID         = handler.BindUserID
)

// target is what a favorite points at: a planet or a person.
type target struct {
	param string
	label string
	find  func(ctx context.Context, db database.DB, userID, id int) (*model.Favorite, error)
	set   func(f *model.Favorite, id int)
}

var (
	planetTarget = target{
		param: "planet_id",
		label: "Planet",
		find: func(ctx context.Context, db database.DB, userID, id int) (*model.Favorite, error) {
			return findPlanetFavorite(ctx, db, userID, id)
		},
		set: func(f *model.Favorite, id int) { f.PlanetID = &id },
	}
	personTarget = target{
		param: "people_id",
		label: "Person",
		find: func(ctx context.Context, db database.DB, userID, id int) (*model.Favorite, error) {
			return findPersonFavorite(ctx, db, userID, id)
		},
		set: func(f *model.Favorite, id int) { f.PeopleID = &id },
	}
)

// AddPlanetFavoriteHandler 將星球加入使用者最愛
// @Summary     Add a favorite planet
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       planet_id path     int                 true "星球 ID"
// @Param       body      body     api.FavoriteRequest true "使用者 ID"
// @Success     201       {object} api.MessageResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /favorite/planet/{planet_id} [post]
func AddPlanetFavoriteHandler(db database.DB) echo.HandlerFunc {
	return add(db, planetTarget)
}

// RemovePlanetFavoriteHandler 將星球自使用者最愛移除
// @Summary     Remove a favorite planet
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       planet_id path     int                 true "星球 ID"
// @Param       body      body     api.FavoriteRequest true "使用者 ID"
// @Success     200       {object} api.MessageResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /favorite/planet/{planet_id} [delete]
func RemovePlanetFavoriteHandler(db database.DB) echo.HandlerFunc {
	return remove(db, planetTarget)
}

// AddPersonFavoriteHandler 將角色加入使用者最愛
// @Summary     Add a favorite person
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       people_id path     int                 true "角色 ID"
// @Param       body      body     api.FavoriteRequest true "使用者 ID"
// @Success     201       {object} api.MessageResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /favorite/people/{people_id} [post]
func AddPersonFavoriteHandler(db database.DB) echo.HandlerFunc {
	return add(db, personTarget)
}

// RemovePersonFavoriteHandler 將角色自使用者最愛移除
// @Summary     Remove a favorite person
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       people_id path     int                 true "角色 ID"
// @Param       body      body     api.FavoriteRequest true "使用者 ID"
// @Success     200       {object} api.MessageResponse
// @Failure     400       {object} api.ErrorResponse
// @Failure     404       {object} api.ErrorResponse
// @Failure     500       {object} api.ErrorResponse
// @Router      /favorite/people/{people_id} [delete]
func RemovePersonFavoriteHandler(db database.DB) echo.HandlerFunc {
	return remove(db, personTarget)
}

func add(db database.DB, t target) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, userID, err := parse(c, t)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()

		_, err = t.find(ctx, db, userID, id)
		if err == nil {
			return errs.New(t.label+" already in favorites", http.StatusBadRequest)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		fav := &model.Favorite{UserID: userID}
		t.set(fav, id)
		if _, err := createFavorite(ctx, db, fav); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.MessageResponse{Message: t.label + " added to favorites"})
	}
}

func remove(db database.DB, t target) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, userID, err := parse(c, t)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()

		fav, err := t.find(ctx, db, userID, id)
		if errors.Is(err, store.ErrNotFound) {
			return errs.New(t.label+" not found in favorites", http.StatusNotFound)
		}
		if err != nil {
			return err
		}

		if err := deleteFavorite(ctx, db, fav.ID); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: t.label + " removed from favorites"})
	}
}

func parse(c echo.Context, t target) (id, userID int, err error) {
	if id, err = handler.PathID(c, t.param); err != nil {
		return 0, 0, err
	}
	if userID, err = bindUserID(c); err != nil {
		return 0, 0, err
	}
	return id, userID, nil
}
