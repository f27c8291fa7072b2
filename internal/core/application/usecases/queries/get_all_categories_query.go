package queries

import (
	"context"
	"errors"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllCategoriesQueryIsNotConstructed = errors.New(
	"GetAllCategoriesQuery must be created via NewGetAllCategoriesQuery constructor",
)

type GetAllCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCategoriesQuery() GetAllCategoriesQuery {
	return GetAllCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCategoriesQueryIsNotConstructed)
}

// CategoryView is the read model of a category. JobCount is the stored
// counter, which may drift until the next resync.
type CategoryView struct {
	ID          kernel.UUID
	Name        string
	Description string
	JobCount    int
	CreatedAt   time.Time
}

// GetAllCategoriesQueryHandler lists categories sorted by name.
type GetAllCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCategoriesQueryHandler(db *gorm.DB) GetAllCategoriesQueryHandler {
	return GetAllCategoriesQueryHandler{db: db}
}

func (h GetAllCategoriesQueryHandler) Handle(ctx context.Context, query GetAllCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			job_count,
			created_at
		FROM categories
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var view CategoryView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Name, &view.Description, &view.JobCount, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		categories = append(categories, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
