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

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context, params servers.GetOrdersParams) error {
	categoryID, err := toOptionalKernelUUID(params.Category)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersQuery(categoryID)
	if err != nil {
		return err
	}

	return s.listOrders(c, query)
}

// GetMyOrders handles GET /api/v1/orders/mine.
func (s *Server) GetMyOrders(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersOwnedByQuery(actor)
	if err != nil {
		return err
	}

	return s.listOrders(c, query)
}

// GetAcceptedOrders handles GET /api/v1/orders/accepted.
func (s *Server) GetAcceptedOrders(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersAcceptedByQuery(actor)
	if err != nil {
		return err
	}

	return s.listOrders(c, query)
}

func (s *Server) listOrders(c echo.Context, query queries.GetOrdersQuery) error {
	views, err := s.h.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body servers.CreateOrderJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	categoryID, err := toKernelUUID(body.CategoryId)
	if err != nil {
		return err
	}
	budget, err := toMoney(body.Budget)
	if err != nil {
		return err
	}

	var description string
	if body.Description != nil {
		description = *body.Description
	}

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), categoryID, body.Title, description, budget)
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.IncrementOrdersCreated()
	s.logger.InfoContext(c.Request().Context(), "order created",
		"order_id", created.ID().String(),
		"category_id", created.CategoryID().String())

	return c.JSON(http.StatusCreated, orderFromAggregate(created))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context, orderID servers.OrderId) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, orderID servers.OrderId) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, id, body.Status)
	if err != nil {
		return err
	}

	result, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	to := result.Order.Status()
	if to != result.From {
		metrics.IncrementOrderStatusChange(result.From.String(), to.String())
	}

	return c.JSON(http.StatusOK, orderFromAggregate(result.Order))
}
