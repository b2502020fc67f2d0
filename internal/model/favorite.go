// File: internal/model/favorite.go
package model

// Favorite links a user to a planet or a person. At least one of PlanetID
// and PeopleID is set.
type Favorite struct {
	ID       int  `db:"id" json:"id"`
	UserID   int  `db:"user_id" json:"user_id"`
	PlanetID *int `db:"planet_id" json:"planet_id"`
	PeopleID *int `db:"people_id" json:"people_id"`
}
