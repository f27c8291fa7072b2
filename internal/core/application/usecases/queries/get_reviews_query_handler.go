package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle returns the visible reviews newest first.
func (h GetReviewsQueryHandler) Handle(ctx context.Context, query GetReviewsQuery) ([]ReviewView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("reviews AS r").
		Select("r.id, r.order_id, r.reviewer_id, r.worker_id, r.rating, r.comment, r.created_at")

	if query.actor.IsEmployer() {
		tx = tx.Joins("JOIN orders AS o ON o.id = r.order_id").
			Where("o.employer_id = ?", query.actor.ID().Bytes())
	} else {
		tx = tx.Where("r.worker_id = ?", query.actor.ID().Bytes())
	}
	if query.orderID != nil {
		tx = tx.Where("r.order_id = ?", query.orderID.Bytes())
	}
	if query.workerID != nil {
		tx = tx.Where("r.worker_id = ?", query.workerID.Bytes())
	}

	rows, err := tx.Order("r.created_at DESC, r.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewView, 0)
	for rows.Next() {
		var (
			view                              ReviewView
			id, orderID, reviewerID, workerID uuid.UUID
		)

		if err = rows.Scan(&id, &orderID, &reviewerID, &workerID, &view.Rating, &view.Comment, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if view.OrderID, err = toUUID(orderID); err != nil {
			return nil, err
		}
		if view.ReviewerID, err = toUUID(reviewerID); err != nil {
			return nil, err
		}
		if view.WorkerID, err = toUUID(workerID); err != nil {
			return nil, err
		}

		reviews = append(reviews, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
