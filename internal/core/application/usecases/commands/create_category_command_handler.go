package commands

import (
	"context"

	"workify/internal/core/domain/model/category"
)

type CreateCategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CategoryUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the category with a zero counter. A taken name fails with
// errs.ErrObjectAlreadyExists.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := category.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
