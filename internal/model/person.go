// File: internal/model/person.go
package model

// Person is a row of the people table.
type Person struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Spice string `db:"spice" json:"spice"`
}
