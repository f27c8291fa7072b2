package postgres

import (
	"context"
	"fmt"

	"workify/internal/adapters/out/postgres/applicationrepo"
	"workify/internal/adapters/out/postgres/categoryrepo"
	"workify/internal/adapters/out/postgres/orderrepo"
	"workify/internal/adapters/out/postgres/reviewrepo"

	"gorm.io/gorm"
)

type constraint struct {
	model any
	name  string
	ddl   string
}

// constraints are applied after AutoMigrate; each one is skipped when it already exists.
var constraints = []constraint{
	{
		model: &categoryrepo.CategoryDTO{},
		name:  "chk_categories_job_count",
		ddl:   `ALTER TABLE categories ADD CONSTRAINT chk_categories_job_count CHECK (job_count >= 0)`,
	},
	{
		model: &orderrepo.OrderDTO{},
		name:  "fk_orders_category",
		ddl: `ALTER TABLE orders ADD CONSTRAINT fk_orders_category
			FOREIGN KEY (category_id) REFERENCES categories(id)`,
	},
	{
		model: &orderrepo.OrderDTO{},
		name:  "chk_orders_status",
		ddl: `ALTER TABLE orders ADD CONSTRAINT chk_orders_status
			CHECK (status IN ('open', 'in_progress', 'completed', 'cancelled'))`,
	},
	{
		model: &applicationrepo.ApplicationDTO{},
		name:  "fk_applications_order",
		ddl: `ALTER TABLE applications ADD CONSTRAINT fk_applications_order
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE`,
	},
	{
		model: &reviewrepo.ReviewDTO{},
		name:  "fk_reviews_order",
		ddl: `ALTER TABLE reviews ADD CONSTRAINT fk_reviews_order
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE`,
	},
	{
		model: &reviewrepo.ReviewDTO{},
		name:  "chk_reviews_rating",
		ddl:   `ALTER TABLE reviews ADD CONSTRAINT chk_reviews_rating CHECK (rating BETWEEN 1 AND 5)`,
	},
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&categoryrepo.CategoryDTO{},
		&orderrepo.OrderDTO{},
		&applicationrepo.ApplicationDTO{},
		&reviewrepo.ReviewDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, c := range constraints {
		if db.Migrator().HasConstraint(c.model, c.name) {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("create constraint %s: %w", c.name, err)
		}
	}

	if err := db.Exec(fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s ON applications (order_id) WHERE status = 'accepted'`,
		applicationrepo.UniqueAcceptedPerOrder,
	)).Error; err != nil {
		return fmt.Errorf("create accepted application index: %w", err)
	}

	return nil
}
