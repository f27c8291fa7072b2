package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a category. It is issued by operators only.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(categoryID kernel.UUID, name, description string) (CreateCategoryCommand, error) {
	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{
		categoryID:  categoryID,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c CreateCategoryCommand) Name() string {
	return c.name
}

func (c CreateCategoryCommand) Description() string {
	return c.description
}
