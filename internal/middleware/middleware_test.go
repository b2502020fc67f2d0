package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars-api/internal/errs"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zerolog.New(buf))
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorHandler(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(&buf)
		e.GET("/x", func(c echo.Context) error {
			return errs.New("Planet not found", http.StatusNotFound).WithPayload(map[string]any{"id": 7})
		})
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, map[string]any{"error": "Planet not found", "id": float64(7)}, decode(t, rec))
		require.Zero(t, buf.Len())
	})

	t.Run("wrapped api error", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.GET("/x", func(c echo.Context) error {
			return fmt.Errorf("handler: %w", errs.New("Missing user_id", 0))
		})
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing user_id", decode(t, rec)["error"])
	})

	t.Run("unknown route", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		rec := serve(e, http.MethodGet, "/nowhere")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Not Found", decode(t, rec)["error"])
	})

	t.Run("method not allowed", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.GET("/x", func(c echo.Context) error { return nil })
		rec := serve(e, http.MethodPut, "/x")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		require.Equal(t, "Method Not Allowed", decode(t, rec)["error"])
	})

	t.Run("storage error", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEcho(&buf)
		e.GET("/x", func(c echo.Context) error {
			return fmt.Errorf("CreateUser: %w", &pgconn.PgError{Code: "23505", TableName: "user"})
		})
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, map[string]any{"error": "Internal Server Error"}, decode(t, rec))
		require.Contains(t, buf.String(), `"sqlstate":"23505"`)
		require.Contains(t, buf.String(), `"table":"user"`)
		require.Contains(t, buf.String(), `"path":"/x"`)
	})

	t.Run("echo 500 hides message", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.GET("/x", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "secret detail")
		})
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("head has no body", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.HEAD("/x", func(c echo.Context) error { return errors.New("boom") })
		rec := serve(e, http.MethodHead, "/x")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Zero(t, rec.Body.Len())
	})

	t.Run("committed response untouched", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.GET("/x", func(c echo.Context) error {
			_ = c.String(http.StatusOK, "done")
			return errors.New("late")
		})
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "done", rec.Body.String())
	})
}

func TestHTTPErrorMessage(t *testing.T) {
	require.Equal(t, "plain", httpErrorMessage(&echo.HTTPError{Message: "plain"}))
	require.Equal(t, "wrapped", httpErrorMessage(&echo.HTTPError{Message: errors.New("wrapped")}))
	require.Equal(t, "42", httpErrorMessage(&echo.HTTPError{Message: 42}))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := newEcho(&bytes.Buffer{})
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/bad", func(c echo.Context) error { return errs.New("Missing user_id", 0) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	cases := []struct {
		path   string
		level  string
		status float64
	}{
		{"/ok", "info", 200},
		{"/bad", "warn", 400},
		{"/fail", "error", 500},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set(echo.HeaderXRequestID, "req-1")
			e.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			require.Equal(t, tc.level, line["level"])
			require.Equal(t, tc.status, line["status"])
			require.Equal(t, tc.path, line["uri"])
			require.Equal(t, "req-1", line["request_id"])
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.Use(RateLimit(0, 0))
		e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		for i := 0; i < 5; i++ {
			require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x").Code)
		}
	})

	t.Run("enforced", func(t *testing.T) {
		e := newEcho(&bytes.Buffer{})
		e.Use(RateLimit(0.001, 2))
		e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x").Code)
		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x").Code)
		rec := serve(e, http.MethodGet, "/x")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "rate limit exceeded", decode(t, rec)["error"])
	})
}
