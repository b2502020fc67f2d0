// Package middleware holds the echo error handler and the request-scoped
// middleware shared by every route.
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"starwars-api/internal/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"modernc.org/sqlite"
)

const internalServerError = "Internal Server Error"

// ErrorHandler turns a handler error into the {"error": ...} body. APIError
// and echo.HTTPError keep their status; everything else is logged and
// answered with a 500.
func ErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorBody(err)
		if status >= http.StatusInternalServerError {
			logStorageError(log, c, err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			log.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}

func errorBody(err error) (int, map[string]any) {
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, apiErr.Body()
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code >= http.StatusInternalServerError {
			return echoErr.Code, map[string]any{"error": internalServerError}
		}
		return echoErr.Code, map[string]any{"error": httpErrorMessage(echoErr)}
	}

	return http.StatusInternalServerError, map[string]any{"error": internalServerError}
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

func logStorageError(log zerolog.Logger, c echo.Context, err error) {
	event := log.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path())

	var pgErr *pgconn.PgError
	var liteErr *sqlite.Error
	switch {
	case errors.As(err, &pgErr):
		event = event.Str("sqlstate", pgErr.Code).Str("table", pgErr.TableName)
	case errors.As(err, &liteErr):
		event = event.Int("sqlite_code", liteErr.Code())
	}

	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		event = event.Str("request_id", id)
	}
	event.Msg("request failed")
}
