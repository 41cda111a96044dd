package repositories

import (
	"context"
	"time"

	"catering-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DishRepository struct {
	db *pgxpool.Pool
}

func NewDishRepository(db *pgxpool.Pool) *DishRepository {
	return &DishRepository{db: db}
}

const dishColumns = `id, name, slug, description, price, COALESCE(image_url, ''),
	category_id, is_available, created_at, updated_at`

func (r *DishRepository) ListAvailable(ctx context.Context) ([]models.Dish, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE is_available = true ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDishes(rows)
}

func scanDishes(rows pgx.Rows) ([]models.Dish, error) {
	dishes := []models.Dish{}
	for rows.Next() {
		var d models.Dish
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Slug, &d.Description, &d.Price, &d.ImageURL,
			&d.CategoryID, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

// FindBySlug loads an available dish by its category slug and dish slug,
// including the allowed extra categories with their available items.
func (r *DishRepository) FindBySlug(ctx context.Context, categorySlug, slug string) (*models.DishDetail, error) {
	detail := &models.DishDetail{}
	err := r.db.QueryRow(ctx, `
		SELECT d.id, d.name, d.slug, d.description, d.price, COALESCE(d.image_url, ''),
			d.category_id, d.is_available, d.created_at, d.updated_at,
			c.name, c.slug
		FROM dishes d
		JOIN categories c ON d.category_id = c.id
		WHERE d.slug = $1 AND c.slug = $2 AND d.is_available = true
	`, slug, categorySlug).Scan(
		&detail.ID, &detail.Name, &detail.Slug, &detail.Description, &detail.Price,
		&detail.ImageURL, &detail.CategoryID, &detail.IsAvailable,
		&detail.CreatedAt, &detail.UpdatedAt,
		&detail.CategoryName, &detail.CategorySlug,
	)
	if err != nil {
		return nil, err
	}

	extras, err := r.allowedExtras(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	detail.AllowedExtras = extras
	return detail, nil
}

func (r *DishRepository) allowedExtras(ctx context.Context, dishID int) ([]models.ExtraCategoryWithItems, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ec.id, ec.name, ei.id, ei.name, ei.price, ei.extra_category_id, ei.is_available
		FROM dish_allowed_extras dae
		JOIN extra_categories ec ON dae.extra_category_id = ec.id
		JOIN extra_items ei ON ei.extra_category_id = ec.id
		WHERE dae.dish_id = $1 AND ei.is_available = true
		ORDER BY ec.name, ei.name
	`, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.ExtraCategoryWithItems{}
	index := map[int]int{}
	for rows.Next() {
		var catID int
		var catName string
		var item models.ExtraItem
		if err := rows.Scan(&catID, &catName, &item.ID, &item.Name,
			&item.Price, &item.ExtraCategoryID, &item.IsAvailable); err != nil {
			return nil, err
		}
		pos, ok := index[catID]
		if !ok {
			pos = len(categories)
			index[catID] = pos
			categories = append(categories, models.ExtraCategoryWithItems{ID: catID, Name: catName})
		}
		categories[pos].Extras = append(categories[pos].Extras, item)
	}
	return categories, rows.Err()
}

func (r *DishRepository) FindDishIDBySlug(ctx context.Context, slug string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, "SELECT id FROM dishes WHERE slug = $1", slug).Scan(&id)
	return id, err
}

func (r *DishRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, slug, is_active FROM categories WHERE is_active = true ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish, allowedExtraIDs []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO dishes (name, slug, description, price, image_url, category_id, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id, created_at, updated_at
	`, dish.Name, dish.Slug, dish.Description, dish.Price, dish.ImageURL,
		dish.CategoryID, dish.IsAvailable, now,
	).Scan(&dish.ID, &dish.CreatedAt, &dish.UpdatedAt)
	if err != nil {
		return err
	}

	for _, extraCategoryID := range allowedExtraIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO dish_allowed_extras (dish_id, extra_category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			dish.ID, extraCategoryID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *DishRepository) Update(ctx context.Context, dish *models.Dish, allowedExtraIDs []int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE dishes
		SET name = $1, slug = $2, description = $3, price = $4,
			image_url = $5, category_id = $6, is_available = $7, updated_at = $8
		WHERE id = $9
	`, dish.Name, dish.Slug, dish.Description, dish.Price, dish.ImageURL,
		dish.CategoryID, dish.IsAvailable, time.Now(), dish.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if allowedExtraIDs != nil {
		if _, err := tx.Exec(ctx,
			"DELETE FROM dish_allowed_extras WHERE dish_id = $1", dish.ID); err != nil {
			return err
		}
		for _, extraCategoryID := range allowedExtraIDs {
			if _, err := tx.Exec(ctx,
				"INSERT INTO dish_allowed_extras (dish_id, extra_category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				dish.ID, extraCategoryID); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *DishRepository) FindByID(ctx context.Context, id int) (*models.Dish, error) {
	var d models.Dish
	err := r.db.QueryRow(ctx,
		"SELECT "+dishColumns+" FROM dishes WHERE id = $1", id,
	).Scan(
		&d.ID, &d.Name, &d.Slug, &d.Description, &d.Price, &d.ImageURL,
		&d.CategoryID, &d.IsAvailable, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM dishes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
