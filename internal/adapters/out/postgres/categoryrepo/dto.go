// Package categoryrepo persists categories and maintains their open-job counters.
package categoryrepo

import (
	"time"

	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the categories table.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_categories_name"`
	Description string    `gorm:"type:text;not null;default:''"`
	JobCount    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

func fromDomain(c *category.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Description: c.Description(),
		JobCount:    c.JobCount(),
		CreatedAt:   c.CreatedAt(),
	}
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return category.RestoreCategory(id, dto.Name, dto.Description, dto.JobCount, dto.CreatedAt)
}
