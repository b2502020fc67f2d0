// File: internal/model/user.go
package model

type User struct {
	ID       int    `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
