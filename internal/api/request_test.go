package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCreateUserRequest(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"empty body", "", ErrMissingBody},
		{"whitespace", "  \n", ErrMissingBody},
		{"not json", "username=bob", ErrMissingBody},
		{"json null", "null", ErrMissingBody},
		{"array", `["bob"]`, ErrMissingBody},
		{"empty object", "{}", ErrMissingBody},
		{"wrong type", `{"username": 7, "email": "a@b.com"}`, ErrMissingBody},
		{"missing username", `{"email": "a@b.com"}`, ErrMissingUsername},
		{"missing email", `{"username": "bob"}`, ErrMissingEmail},
		{"null email", `{"username": "bob", "email": null}`, ErrMissingEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := DecodeCreateUserRequest(strings.NewReader(tc.body))
			require.Nil(t, req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("nil reader", func(t *testing.T) {
		_, err := DecodeCreateUserRequest(nil)
		require.ErrorIs(t, err, ErrMissingBody)
	})

	t.Run("ok", func(t *testing.T) {
		req, err := DecodeCreateUserRequest(strings.NewReader(`{"username":"bob","email":"bob@b.com","password":"pw"}`))
		require.NoError(t, err)
		require.Equal(t, "bob", *req.Username)
		require.Equal(t, "bob@b.com", *req.Email)
		require.Equal(t, "pw", *req.Password)
	})

	t.Run("password optional", func(t *testing.T) {
		req, err := DecodeCreateUserRequest(strings.NewReader(`{"username":"bob","email":"bob@b.com"}`))
		require.NoError(t, err)
		require.Nil(t, req.Password)
	})
}

func TestCustomValidator(t *testing.T) {
	cv := NewValidator()
	id := 1
	require.NoError(t, cv.Validate(&FavoriteRequest{UserID: &id}))
	require.Error(t, cv.Validate(&FavoriteRequest{}))

	zero := 0
	require.NoError(t, cv.Validate(&FavoriteRequest{UserID: &zero}), "presence, not value, is checked")
}
