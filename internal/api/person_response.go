// File: internal/api/person_response.go
package api

import "starwars-api/internal/model"

// swagger:model api.PersonResponse
type PersonResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Chewbacca"`
	Spice string `json:"spice" example:"Wookiee"`
}

func NewPersonResponse(p model.Person) PersonResponse {
	return PersonResponse{ID: p.ID, Name: p.Name, Spice: p.Spice}
}

func NewPersonResponses(people []model.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, NewPersonResponse(p))
	}
	return out
}
