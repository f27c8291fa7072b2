package queries

import (
	"context"
	"errors"

	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetJobStatsQueryIsNotConstructed = errors.New(
	"GetJobStatsQuery must be created via NewGetJobStatsQuery constructor",
)

type GetJobStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetJobStatsQuery() GetJobStatsQuery {
	return GetJobStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetJobStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobStatsQueryIsNotConstructed)
}

// JobStats summarizes the marketplace. TotalOpenJobs counts open orders live
// and does not read the category counters.
type JobStats struct {
	TotalOpenJobs   int64
	TotalCategories int64
}

type GetJobStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetJobStatsQueryHandler(db *gorm.DB) GetJobStatsQueryHandler {
	return GetJobStatsQueryHandler{db: db}
}

func (h GetJobStatsQueryHandler) Handle(ctx context.Context, query GetJobStatsQuery) (JobStats, error) {
	if err := query.Validate(); err != nil {
		return JobStats{}, err
	}

	var stats JobStats
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM orders WHERE status = ?) AS total_open_jobs,
			(SELECT count(*) FROM categories) AS total_categories
	`, order.Open.String()).Row().Scan(&stats.TotalOpenJobs, &stats.TotalCategories)
	if err != nil {
		return JobStats{}, err
	}

	return stats, nil
}
