package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starwars-api/internal/api"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestBindUserID(t *testing.T) {
	e := echo.New()
	e.JSONSerializer = api.JSONSerializer{}
	e.Validator = api.NewValidator()

	newCtx := func(body, contentType string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if contentType != "" {
			req.Header.Set(echo.HeaderContentType, contentType)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	id, err := BindUserID(newCtx(`{"user_id":7}`, echo.MIMEApplicationJSON))
	require.NoError(t, err)
	require.Equal(t, 7, id)

	id, err = BindUserID(newCtx(`{"user_id":0}`, echo.MIMEApplicationJSON))
	require.NoError(t, err)
	require.Zero(t, id)

	cases := []struct {
		name        string
		body        string
		contentType string
	}{
		{"empty body", "", ""},
		{"empty object", "{}", echo.MIMEApplicationJSON},
		{"null", `{"user_id":null}`, echo.MIMEApplicationJSON},
		{"wrong type", `{"user_id":"1"}`, echo.MIMEApplicationJSON},
		{"syntax", `{"user_id":`, echo.MIMEApplicationJSON},
		{"unsupported media", `user_id=1`, echo.MIMETextPlain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BindUserID(newCtx(tc.body, tc.contentType))
			require.ErrorIs(t, err, api.ErrMissingUserID)
		})
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("12")
	id, err := PathID(c, "id")
	require.NoError(t, err)
	require.Equal(t, 12, id)

	for _, bad := range []string{"", "x", "1.5", "99999999999999999999"} {
		c.SetParamValues(bad)
		_, err := PathID(c, "id")
		require.ErrorIs(t, err, echo.ErrNotFound, bad)
	}
}
