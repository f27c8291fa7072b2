package category

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/errs"
)

const maxNameLength = 100

// ErrCategoryIsNotConstructed is returned when a Category was not created through
// NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups orders. JobCount approximates the number of Open orders in the
// category and is only ever changed by the persistence layer atomically.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	jobCount    int
	createdAt   time.Time

	isConstructed bool
}

// NewCategory creates an empty category with a zero job count.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	c := &Category{
		description:   description,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory rebuilds a category from persistence.
func RestoreCategory(id kernel.UUID, name, description string, jobCount int, createdAt time.Time) (*Category, error) {
	c, err := NewCategory(id, name, description)
	if err != nil {
		return nil, err
	}

	if jobCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("job count", jobCount, 0, "unbounded")
	}

	c.jobCount = jobCount
	c.createdAt = createdAt
	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) JobCount() int {
	return c.jobCount
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, maxNameLength)
	}
	c.name = name
	return nil
}
