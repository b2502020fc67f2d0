package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"
)

func ListPlanets(ctx context.Context, db database.DB) ([]model.Planet, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, terrain FROM planets ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	defer rows.Close()

	planets := []model.Planet{}
	for rows.Next() {
		var p model.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.Terrain); err != nil {
			return nil, fmt.Errorf("ListPlanets: %w", err)
		}
		planets = append(planets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPlanets: %w", err)
	}
	return planets, nil
}

func GetPlanetByID(ctx context.Context, db database.DB, id int) (*model.Planet, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, name, terrain FROM planets WHERE id = $1`,
		id,
	)
	p := &model.Planet{}
	if err := row.Scan(&p.ID, &p.Name, &p.Terrain); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetPlanetByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetPlanetByID: %w", err)
	}
	return p, nil
}
