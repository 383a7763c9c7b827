package repository

import (
	"context"

	"manomangal/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuRepository interface {
	ListActive(ctx context.Context) ([]domain.MenuItem, error)
}

type PGMenuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) MenuRepository {
	return &PGMenuRepository{db: db}
}

func (r *PGMenuRepository) ListActive(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description, category, price, is_veg, is_active FROM menu_items WHERE is_active = true ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.IsVeg, &m.IsActive); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

var _ MenuRepository = (*PGMenuRepository)(nil)
