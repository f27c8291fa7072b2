package queries

import (
	"context"

	"workify/internal/core/domain/model/application"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetApplicationsQueryHandler struct {
	db *gorm.DB
}

func NewGetApplicationsQueryHandler(db *gorm.DB) GetApplicationsQueryHandler {
	return GetApplicationsQueryHandler{db: db}
}

// Handle returns the visible applications oldest first.
func (h GetApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationsQuery,
) ([]ApplicationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("applications AS a").
		Select("a.id, a.order_id, a.worker_id, a.cover_letter, a.status, a.created_at")

	if query.actor.IsEmployer() {
		tx = tx.Joins("JOIN orders AS o ON o.id = a.order_id").
			Where("o.employer_id = ?", query.actor.ID().Bytes())
	} else {
		tx = tx.Where("a.worker_id = ?", query.actor.ID().Bytes())
	}
	if query.orderID != nil {
		tx = tx.Where("a.order_id = ?", query.orderID.Bytes())
	}
	if query.workerID != nil {
		tx = tx.Where("a.worker_id = ?", query.workerID.Bytes())
	}

	rows, err := tx.Order("a.created_at, a.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]ApplicationView, 0)
	for rows.Next() {
		var (
			view                  ApplicationView
			id, orderID, workerID uuid.UUID
			status                string
		)

		if err = rows.Scan(&id, &orderID, &workerID, &view.CoverLetter, &status, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.OrderID, err = toUUID(orderID); err != nil {
			return nil, err
		}
		if view.WorkerID, err = toUUID(workerID); err != nil {
			return nil, err
		}
		if view.Status, err = application.ParseStatus(status); err != nil {
			return nil, err
		}

		apps = append(apps, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}
