package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

const resourceSelect = `
	SELECT r.id, r.title, r.context, r.teachings, r.link, r.image_url, r.category_id, r.owner_id, r.created_at,
		c.name AS category_name
	FROM resources r
	LEFT JOIN resource_categories c ON c.id = r.category_id
`

var resourceList = listQuery{
	base:          resourceSelect,
	alias:         "r",
	searchColumns: []string{"r.title", "r.context"},
}

type resourceRow struct {
	models.Resource
	CategoryName sql.NullString `db:"category_name"`
}

func (r resourceRow) toModel() models.Resource {
	resource := r.Resource
	if resource.CategoryID != nil && r.CategoryName.Valid {
		resource.Category = &models.Category{ID: *resource.CategoryID, Name: r.CategoryName.String}
	}
	return resource
}

type resourceRepository struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (title, context, teachings, link, image_url, category_id, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		resource.Title, resource.Context, resource.Teachings, resource.Link,
		resource.ImageURL, resource.CategoryID, resource.OwnerID,
	).Scan(&resource.ID, &resource.CreatedAt)
	if err != nil {
		return classify("create resource", err)
	}

	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, resourceID int64) (*models.Resource, error) {
	var row resourceRow

	err := r.db.GetContext(ctx, &row, resourceSelect+` WHERE r.id = $1`, resourceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resource %d: %w", resourceID, ErrNotFound)
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}

	resource := row.toModel()
	return &resource, nil
}

func (r *resourceRepository) List(ctx context.Context, filter ListFilter) ([]models.Resource, error) {
	query, args := buildListQuery(resourceList, filter)

	var rows []resourceRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	resources := make([]models.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, row.toModel())
	}

	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources SET
			title = $1,
			context = $2,
			teachings = $3,
			link = $4,
			image_url = $5,
			category_id = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		resource.Title, resource.Context, resource.Teachings, resource.Link,
		resource.ImageURL, resource.CategoryID, resource.ID,
	)
	if err != nil {
		return classify("update resource", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource %d: %w", resource.ID, ErrNotFound)
	}

	return nil
}

func (r *resourceRepository) Delete(ctx context.Context, resourceID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, resourceID)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource %d: %w", resourceID, ErrNotFound)
	}

	return nil
}
