// Package reviewrepo persists order reviews.
package reviewrepo

import (
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/review"

	"github.com/google/uuid"
)

const uniqueOrder = "uq_reviews_order"

// ReviewDTO represents the reviews table. order_id is unique: one review per order.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reviews_order"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"type:smallint;not null"`
	Comment    string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID().Bytes(),
		OrderID:    r.OrderID().Bytes(),
		ReviewerID: r.ReviewerID().Bytes(),
		WorkerID:   r.WorkerID().Bytes(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.OrderID, dto.ReviewerID, dto.WorkerID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return review.RestoreReview(ids[0], ids[1], ids[2], ids[3], dto.Rating, dto.Comment, dto.CreatedAt)
}
