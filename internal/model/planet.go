// File: internal/model/planet.go
package model

type Planet struct {
	ID      int     `db:"id" json:"id"`
	Name    *string `db:"name" json:"name"`
	Terrain *string `db:"terrain" json:"terrain"`
}
