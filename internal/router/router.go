// File: internal/router/router.go
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "starwars-api/docs" // 引入 swag 產出的 docs

	"starwars-api/internal/api"
	"starwars-api/internal/config"
	"starwars-api/internal/database"
	"starwars-api/internal/handler"
	"starwars-api/internal/handler/favorites"
	"starwars-api/internal/handler/people"
	"starwars-api/internal/handler/planets"
	"starwars-api/internal/handler/users"
	"starwars-api/internal/metrics"
	"starwars-api/internal/middleware"
)

// New 建立 Echo 實例並掛上共用中介層與所有路由
func New(db database.DB, log zerolog.Logger, cfg config.ServerConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = api.JSONSerializer{}
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	e.Use(metrics.Middleware())

	Setup(e, db)
	return e
}

// Setup 註冊所有路由
func Setup(e *echo.Echo, db database.DB) {
	e.GET("/", handler.SitemapHandler(e.Routes))

	// 健康檢查與監控
	e.GET("/ping", handler.PingHandler(db))
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/user", users.ListUsersHandler(db))
	e.POST("/person", users.CreateUserHandler(db))
	e.GET("/users/favorites", users.ListFavoritesHandler(db))

	e.GET("/planets", planets.ListPlanetsHandler(db))
	e.GET("/planets/:id", planets.GetPlanetHandler(db))

	e.GET("/people", people.ListPeopleHandler(db))
	e.GET("/people/:id", people.GetPersonHandler(db))

	fav := e.Group("/favorite")
	fav.POST("/planet/:planet_id", favorites.AddPlanetFavoriteHandler(db))
	fav.DELETE("/planet/:planet_id", favorites.RemovePlanetFavoriteHandler(db))
	fav.POST("/people/:people_id", favorites.AddPersonFavoriteHandler(db))
	fav.DELETE("/people/:people_id", favorites.RemovePersonFavoriteHandler(db))
}
