// File: internal/api/planet_response.go
package api

import "starwars-api/internal/model"

// swagger:model api.PlanetResponse
type PlanetResponse struct {
	ID      int     `json:"id" example:"1"`
	Name    *string `json:"name" example:"Tatooine"`
	Terrain *string `json:"terrain" example:"desert"`
}

func NewPlanetResponse(p model.Planet) PlanetResponse {
	return PlanetResponse{ID: p.ID, Name: p.Name, Terrain: p.Terrain}
}

func NewPlanetResponses(planets []model.Planet) []PlanetResponse {
	out := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		out = append(out, NewPlanetResponse(p))
	}
	return out
}
