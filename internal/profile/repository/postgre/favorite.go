package postgre

import (
	"context"

	"tastoria/internal/profile"
	repo "tastoria/internal/profile/repository"
)

const favoriteListQuery = `
	SELECT m.id, m.cafe_id, m.name, m.description, m.price, m.category, m.image, m.weight,
		m.is_available, m.created_at, m.updated_at, f.created_at
	FROM favorites f
	JOIN menu_items m ON m.id = f.menu_item_id
	WHERE f.user_id = $1
	ORDER BY f.created_at DESC`

func (r *implRepository) AddFavorite(ctx context.Context, opt repo.FavoriteOptions) error {
	query := `
		INSERT INTO favorites (user_id, menu_item_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, menu_item_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.MenuItemID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AddFavorite"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

func (r *implRepository) RemoveFavorite(ctx context.Context, opt repo.FavoriteOptions) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND menu_item_id = $2`

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.MenuItemID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RemoveFavorite"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListFavorites returns the user's saved items, newest first.
func (r *implRepository) ListFavorites(ctx context.Context, userID string) ([]profile.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, favoriteListQuery, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFavorites"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	favs := []profile.Favorite{}
	for rows.Next() {
		var f profile.Favorite
		it := &f.Item
		if err := rows.Scan(
			&it.ID, &it.CafeID, &it.Name, &it.Description, &it.Price, &it.Category, &it.Image, &it.Weight,
			&it.IsAvailable, &it.CreatedAt, &it.UpdatedAt, &f.SavedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListFavorites"), err)
			return nil, repo.ErrFailedToList
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListFavorites"), err)
		return nil, repo.ErrFailedToList
	}
	return favs, nil
}
