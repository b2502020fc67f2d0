package store

import (
	"context"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"
)

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, email, password, is_active
		 FROM "user" ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`INSERT INTO "user" (email, password, is_active)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		u.Email,
		u.Password,
		u.IsActive,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
