package http

import (
	"fmt"
	"net/http"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/generated/servers"
	"workify/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetApplications handles GET /api/v1/applications.
func (s *Server) GetApplications(c echo.Context, params servers.GetApplicationsParams) error {
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

	query, err := queries.NewGetApplicationsQuery(actor, orderID, workerID)
	if err != nil {
		return err
	}

	views, err := s.h.GetApplications.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Application, len(views))
	for i, v := range views {
		response[i] = applicationFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// SubmitApplication handles POST /api/v1/orders/{orderId}/applications.
func (s *Server) SubmitApplication(c echo.Context, orderID servers.OrderId) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	var body servers.SubmitApplicationJSONRequestBody
	if err = c.Bind(&body); err != nil {
		return err
	}

	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}

	var coverLetter string
	if body.CoverLetter != nil {
		coverLetter = *body.CoverLetter
	}

	cmd, err := commands.NewSubmitApplicationCommand(actor, kernel.NewUUID(), id, coverLetter)
	if err != nil {
		return err
	}

	submitted, err := s.h.SubmitApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.IncrementApplications(metrics.ActionSubmitted)
	return c.JSON(http.StatusCreated, applicationFromAggregate(submitted))
}

// DecideApplication handles POST /api/v1/applications/{applicationId}/{action}.
func (s *Server) DecideApplication(
	c echo.Context,
	applicationID openapi_types.UUID,
	action servers.DecideApplicationParamsAction,
) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}

	id, err := toKernelUUID(applicationID)
	if err != nil {
		return err
	}

	switch action {
	case servers.Accept:
		return s.acceptApplication(c, actor, id)
	case servers.Reject:
		return s.rejectApplication(c, actor, id)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown action %q", action))
	}
}

func (s *Server) acceptApplication(c echo.Context, actor kernel.Actor, id kernel.UUID) error {
	cmd, err := commands.NewAcceptApplicationCommand(actor, id)
	if err != nil {
		return err
	}

	result, err := s.h.AcceptApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.IncrementApplications(metrics.ActionAccepted)
	s.logger.InfoContext(c.Request().Context(), "application accepted",
		"application_id", result.Application.ID().String(),
		"order_id", result.Order.ID().String())

	o := orderFromAggregate(result.Order)
	return c.JSON(http.StatusOK, servers.ApplicationDecision{
		Application: applicationFromAggregate(result.Application),
		Order:       &o,
	})
}

func (s *Server) rejectApplication(c echo.Context, actor kernel.Actor, id kernel.UUID) error {
	cmd, err := commands.NewRejectApplicationCommand(actor, id)
	if err != nil {
		return err
	}

	rejected, err := s.h.RejectApplication.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	metrics.IncrementApplications(metrics.ActionRejected)
	return c.JSON(http.StatusOK, servers.ApplicationDecision{
		Application: applicationFromAggregate(rejected),
	})
}
