package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"
)

func ListPeople(ctx context.Context, db database.DB) ([]model.Person, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, spice FROM people ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPeople: %w", err)
	}
	defer rows.Close()

	people := []model.Person{}
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Spice); err != nil {
			return nil, fmt.Errorf("ListPeople: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPeople: %w", err)
	}
	return people, nil
}

func GetPersonByID(ctx context.Context, db database.DB, id int) (*model.Person, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, name, spice FROM people WHERE id = $1`,
		id,
	)
	p := &model.Person{}
	if err := row.Scan(&p.ID, &p.Name, &p.Spice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetPersonByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetPersonByID: %w", err)
	}
	return p, nil
}
