package http

import (
	"net/http"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/generated/servers"
	"workify/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// GetReviews handles GET /api/v1/reviews.
func (s *Server) GetReviews(c echo.Context, params servers.GetReviewsParams) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	orderID, err := toOptionalKernelUUID(params.Order)
	if err != nil {
		return err
	}
	workerID, err := toOptionalKernelUUID(params.Worker)
	if err != nil {
		return err
	}

	query, err := queries.NewGetReviewsQuery(actor, orderID, workerID)
	if err != nil {
		return err
	}

	views, err := s.h.GetReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Review, len(views))
	for i, v := range views {
		response[i] = reviewFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateReview handles POST /api/v1/orders/{orderId}/review.
func (s *Server) CreateReview(c echo.Context, orderID servers.OrderId) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body servers.CreateReviewJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	var comment string
	if body.Comment != nil {
		comment = *body.Comment
	}

	cmd, err := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), id, body.Rating, comment)
	if err != nil {
		return err
	}

	created, err := s.h.CreateReview.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.IncrementReviewsCreated()
	return c.JSON(http.StatusCreated, reviewFromAggregate(created))
}
