package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starwars-api/internal/database"
	"starwars-api/internal/model"
)

const favoriteColumns = `id, user_id, planet_id, people_id`

func ListFavoritesByUser(ctx context.Context, db database.DB, userID int) ([]model.Favorite, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+favoriteColumns+`
		 FROM favorites WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
	}
	defer rows.Close()

	favorites := []model.Favorite{}
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID); err != nil {
			return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
	}
	return favorites, nil
}

// FindPlanetFavorite returns the first favorite of userID pointing at planetID.
func FindPlanetFavorite(ctx context.Context, db database.DB, userID, planetID int) (*model.Favorite, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+`
		 FROM favorites WHERE user_id = $1 AND planet_id = $2
		 ORDER BY id LIMIT 1`,
		userID,
		planetID,
	)
	f, err := scanFavorite(row)
	if err != nil {
		return nil, fmt.Errorf("FindPlanetFavorite: %w", err)
	}
	return f, nil
}

// FindPersonFavorite returns the first favorite of userID pointing at peopleID.
func FindPersonFavorite(ctx context.Context, db database.DB, userID, peopleID int) (*model.Favorite, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+`
		 FROM favorites WHERE user_id = $1 AND people_id = $2
		 ORDER BY id LIMIT 1`,
		userID,
		peopleID,
	)
	f, err := scanFavorite(row)
	if err != nil {
		return nil, fmt.Errorf("FindPersonFavorite: %w", err)
	}
	return f, nil
}

func scanFavorite(row *sql.Row) (*model.Favorite, error) {
	f := &model.Favorite{}
	if err := row.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func CreateFavorite(ctx context.Context, db database.DB, f *model.Favorite) (*model.Favorite, error) {
	row := db.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, planet_id, people_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		f.UserID,
		nullableInt(f.PlanetID),
		nullableInt(f.PeopleID),
	)
	if err := row.Scan(&f.ID); err != nil {
		return nil, fmt.Errorf("CreateFavorite: %w", err)
	}
	return f, nil
}

func DeleteFavorite(ctx context.Context, db database.DB, id int) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM favorites WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteFavorite: %w", err)
	}
	return nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
