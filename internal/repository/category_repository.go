package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

// CategoryTable names one of the category tables. Only the constants below are
// valid since the value is placed into SQL text.
type CategoryTable string

const (
	PostCategories     CategoryTable = "post_categories"
	ResourceCategories CategoryTable = "resource_categories"
	ClubCategories     CategoryTable = "club_categories"
)

type categoryRepository struct {
	db    *sqlx.DB
	table CategoryTable
}

func NewCategoryRepository(db *sqlx.DB, table CategoryTable) CategoryRepository {
	switch table {
	case PostCategories, ResourceCategories, ClubCategories:
	default:
		panic(fmt.Sprintf("unknown category table %q", table))
	}
	return &categoryRepository{db: db, table: table}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING id`, r.table)

	err := r.db.QueryRowxContext(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		return classify("create category", err)
	}

	return nil
}

func (r *categoryRepository) getBy(ctx context.Context, column string, value any) (*models.Category, error) {
	var category models.Category

	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE %s = $1`, r.table, column)

	err := r.db.GetContext(ctx, &category, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category with %s %v: %w", column, value, ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, categoryID int64) (*models.Category, error) {
	return r.getBy(ctx, "id", categoryID)
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return r.getBy(ctx, "name", name)
}

func (r *categoryRepository) List(ctx context.Context, skip, limit int) ([]models.Category, error) {
	skip, limit = clampPage(skip, limit)
	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id OFFSET $1 LIMIT $2`, r.table)

	categories := []models.Category{}
	if err := r.db.SelectContext(ctx, &categories, query, skip, limit); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := fmt.Sprintf(`UPDATE %s SET name = $1 WHERE id = $2`, r.table)

	result, err := r.db.ExecContext(ctx, query, category.Name, category.ID)
	if err != nil {
		return classify("update category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category %d: %w", category.ID, ErrNotFound)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, categoryID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}

	return nil
}
