package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"collegeblog/internal/models"
)

const clubSelect = `
	SELECT cl.id, cl.name, cl.description, cl.image_url, cl.category_id, cl.owner_id, cl.created_at,
		c.name AS category_name
	FROM clubs cl
	LEFT JOIN club_categories c ON c.id = cl.category_id
`

var clubList = listQuery{
	base:          clubSelect,
	alias:         "cl",
	searchColumns: []string{"cl.name", "cl.description"},
}

type clubRow struct {
	models.Club
	CategoryName sql.NullString `db:"category_name"`
}

func (r clubRow) toModel() models.Club {
	club := r.Club
	if club.CategoryID != nil && r.CategoryName.Valid {
		club.Category = &models.Category{ID: *club.CategoryID, Name: r.CategoryName.String}
	}
	return club
}

type clubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	query := `
		INSERT INTO clubs (name, description, image_url, category_id, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		club.Name, club.Description, club.ImageURL, club.CategoryID, club.OwnerID,
	).Scan(&club.ID, &club.CreatedAt)
	if err != nil {
		return classify("create club", err)
	}

	return nil
}

func (r *clubRepository) GetByID(ctx context.Context, clubID int64) (*models.Club, error) {
	var row clubRow

	err := r.db.GetContext(ctx, &row, clubSelect+` WHERE cl.id = $1`, clubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("club %d: %w", clubID, ErrNotFound)
		}
		return nil, fmt.Errorf("get club: %w", err)
	}

	club := row.toModel()
	return &club, nil
}

func (r *clubRepository) List(ctx context.Context, filter ListFilter) ([]models.Club, error) {
	query, args := buildListQuery(clubList, filter)

	var rows []clubRow
	err := r.db.SelectContext(ctx, &rows, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	clubs := make([]models.Club, 0, len(rows))
	for _, row := range rows {
		clubs = append(clubs, row.toModel())
	}

	return clubs, nil
}

func (r *clubRepository) Update(ctx context.Context, club *models.Club) error {
	query := `
		UPDATE clubs SET
			name = $1,
			description = $2,
			image_url = $3,
			category_id = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		club.Name, club.Description, club.ImageURL, club.CategoryID, club.ID,
	)
	if err != nil {
		return classify("update club", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("club %d: %w", club.ID, ErrNotFound)
	}

	return nil
}

func (r *clubRepository) Delete(ctx context.Context, clubID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = $1`, clubID)
	if err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete club: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("club %d: %w", clubID, ErrNotFound)
	}

	return nil
}
