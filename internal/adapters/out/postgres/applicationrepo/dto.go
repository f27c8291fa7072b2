// Package applicationrepo persists worker applications to orders.
package applicationrepo

import (
	"time"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	// uniqueOrderWorker guarantees one application per (order, worker) pair.
	uniqueOrderWorker = "uq_applications_order_worker"

	// UniqueAcceptedPerOrder is the partial unique index allowing at most one
	// accepted application per order.
	UniqueAcceptedPerOrder = "uq_applications_one_accepted"
)

// ApplicationDTO represents the applications table.
type ApplicationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_order_worker,priority:1"`
	WorkerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_order_worker,priority:2;index"`
	CoverLetter string    `gorm:"type:text;not null;default:''"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (ApplicationDTO) TableName() string {
	return "applications"
}

func fromDomain(a *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          a.ID().Bytes(),
		OrderID:     a.OrderID().Bytes(),
		WorkerID:    a.WorkerID().Bytes(),
		CoverLetter: a.CoverLetter(),
		Status:      a.Status().String(),
		CreatedAt:   a.CreatedAt(),
	}
}

func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	status, err := application.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(id, orderID, workerID, dto.CoverLetter, status, dto.CreatedAt)
}
