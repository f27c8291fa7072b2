package commands

import (
	"context"
	"fmt"
)

// SyncCategoryCountsCommandHandler recomputes every category's open-job counter
// from the orders table in one transaction. It repairs drift left by status
// transitions, which never touch the counter.
type SyncCategoryCountsCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewSyncCategoryCountsCommandHandler(uowFactory CategoryUoWFactory) SyncCategoryCountsCommandHandler {
	return SyncCategoryCountsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of categories updated.
func (h SyncCategoryCountsCommandHandler) Handle(ctx context.Context) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.CategoryRepository().RecomputeAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("recompute category counters: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}
