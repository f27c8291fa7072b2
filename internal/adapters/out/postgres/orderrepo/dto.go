// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name so raw read queries can filter on it directly.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_category_status,priority:1"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	BudgetCents int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;index:idx_orders_category_status,priority:2"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		EmployerID:  o.EmployerID().Bytes(),
		CategoryID:  o.CategoryID().Bytes(),
		Title:       o.Title(),
		Description: o.Description(),
		BudgetCents: o.Budget().Cents(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employerID, err := kernel.UUIDFromBytes(dto.EmployerID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	budget, err := kernel.NewMoney(dto.BudgetCents)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, employerID, categoryID, dto.Title, dto.Description, budget, status, dto.CreatedAt)
}
