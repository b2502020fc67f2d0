// File: internal/api/favorite_response.go
package api

import "starwars-api/internal/model"

// swagger:model api.FavoriteResponse
type FavoriteResponse struct {
	ID        int  `json:"id" example:"1"`
	User      int  `json:"user" example:"1"`
	PeopleFav *int `json:"people_fav" example:"3"`
	PlanetFav *int `json:"planet_fav"`
}

func NewFavoriteResponse(f model.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		User:      f.UserID,
		PeopleFav: f.PeopleID,
		PlanetFav: f.PlanetID,
	}
}

func NewFavoriteResponses(favorites []model.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, NewFavoriteResponse(f))
	}
	return out
}
