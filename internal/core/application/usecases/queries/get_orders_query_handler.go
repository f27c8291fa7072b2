package queries

import (
	"context"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads orders newest first.
//
// Example:
//
//	query, err := NewGetOrdersQuery(nil)
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.employer_id, o.category_id, o.title, o.description, o.budget_cents, o.status, o.created_at")

	switch {
	case query.categoryID != nil:
		tx = tx.Where("o.category_id = ?", query.categoryID.Bytes())
	case query.employerID != nil:
		tx = tx.Where("o.employer_id = ?", query.employerID.Bytes())
	case query.workerID != nil:
		tx = tx.Joins("JOIN applications AS a ON a.order_id = o.id").
			Where("a.worker_id = ? AND a.status = ?", query.workerID.Bytes(), application.Accepted.String())
	}

	rows, err := tx.Order("o.created_at DESC, o.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                       OrderView
			id, employerID, categoryID uuid.UUID
			budgetCents                int64
			status                     string
		)

		if err = rows.Scan(&id, &employerID, &categoryID, &view.Title, &view.Description,
			&budgetCents, &status, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.EmployerID, err = toUUID(employerID); err != nil {
			return nil, err
		}
		if view.CategoryID, err = toUUID(categoryID); err != nil {
			return nil, err
		}
		if view.Budget, err = toMoney(budgetCents); err != nil {
			return nil, err
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}

		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
