package http

import (
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // absent filter
	}
	converted, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toMoney(amount float32) (kernel.Money, error) {
	return kernel.MoneyFromFloat(float64(amount))
}

func orderFromView(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:          v.ID.Bytes(),
		EmployerId:  v.EmployerID.Bytes(),
		CategoryId:  v.CategoryID.Bytes(),
		Title:       v.Title,
		Description: v.Description,
		Budget:      float32(v.Budget.Float()),
		Status:      servers.OrderStatus(v.Status.String()),
		CreatedAt:   v.CreatedAt,
	}
}

func orderFromAggregate(o *order.Order) servers.Order {
	return servers.Order{
		Id:          o.ID().Bytes(),
		EmployerId:  o.EmployerID().Bytes(),
		CategoryId:  o.CategoryID().Bytes(),
		Title:       o.Title(),
		Description: o.Description(),
		Budget:      float32(o.Budget().Float()),
		Status:      servers.OrderStatus(o.Status().String()),
		CreatedAt:   o.CreatedAt(),
	}
}

func applicationFromView(v queries.ApplicationView) servers.Application {
	return servers.Application{
		Id:          v.ID.Bytes(),
		OrderId:     v.OrderID.Bytes(),
		WorkerId:    v.WorkerID.Bytes(),
		CoverLetter: v.CoverLetter,
		Status:      servers.ApplicationStatus(v.Status.String()),
		CreatedAt:   v.CreatedAt,
	}
}

func applicationFromAggregate(a *application.Application) servers.Application {
	return servers.Application{
		Id:          a.ID().Bytes(),
		OrderId:     a.OrderID().Bytes(),
		WorkerId:    a.WorkerID().Bytes(),
		CoverLetter: a.CoverLetter(),
		Status:      servers.ApplicationStatus(a.Status().String()),
		CreatedAt:   a.CreatedAt(),
	}
}

func reviewFromView(v queries.ReviewView) servers.Review {
	return servers.Review{
		Id:         v.ID.Bytes(),
		OrderId:    v.OrderID.Bytes(),
		ReviewerId: v.ReviewerID.Bytes(),
		WorkerId:   v.WorkerID.Bytes(),
		Rating:     v.Rating,
		Comment:    v.Comment,
		CreatedAt:  v.CreatedAt,
	}
}

func reviewFromAggregate(r *review.Review) servers.Review {
	return servers.Review{
		Id:         r.ID().Bytes(),
		OrderId:    r.OrderID().Bytes(),
		ReviewerId: r.ReviewerID().Bytes(),
		WorkerId:   r.WorkerID().Bytes(),
		Rating:     r.Rating(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
	}
}

func categoryFromView(v queries.CategoryView) servers.Category {
	return servers.Category{
		Id:          v.ID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		JobCount:    v.JobCount,
	}
}
