package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tastoria/internal/menu"
	repo "tastoria/internal/menu/repository"
)

const itemColumns = `id, cafe_id, name, description, price, category, image, weight, is_available, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (menu.Item, error) {
	var item menu.Item
	err := s.Scan(
		&item.ID, &item.CafeID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Image, &item.Weight, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (menu.Item, error) {
	query := `
		INSERT INTO menu_items (id, cafe_id, name, description, price, category, image, weight, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		r.newID(), opt.CafeID, opt.Name, opt.Description, opt.Price, opt.Category, opt.Image, opt.Weight, opt.IsAvailable,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return menu.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem returns a zero Item when nothing matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (menu.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE %s LIMIT 1", itemColumns, mods)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return menu.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return menu.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]menu.Item, int, error) {
	where, args := r.buildFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM menu_items WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, args := r.buildPage(opt, args)
	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE %s ORDER BY cafe_id, category, name %s", itemColumns, where, page)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []menu.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem returns a zero Item when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (menu.Item, error) {
	query := `
		UPDATE menu_items
		SET cafe_id = $1, name = $2, description = $3, price = $4, category = $5,
			image = $6, weight = $7, is_available = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + itemColumns

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.CafeID, opt.Name, opt.Description, opt.Price, opt.Category, opt.Image, opt.Weight, opt.IsAvailable, opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return menu.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return menu.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
