// File: internal/service/password.go
package service

import (
	"errors"
	"net/http"

	"starwars-api/internal/errs"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is lowered in tests.
var passwordCost = bcrypt.DefaultCost

var ErrPasswordTooLong = errs.New("password must be at most 72 bytes", http.StatusBadRequest)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串；超過 72 bytes 回傳 ErrPasswordTooLong
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
