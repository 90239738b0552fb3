package memory

import (
	"context"
	"errors"
	"maps"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository reads and stages orders inside a unit of work.
type OrderRepository struct {
	uow *UnitOfWork
}

// NextID advances the staged sequence. The new value is kept only on Commit.
func (r *OrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	if err := r.uow.check(ctx); err != nil {
		return 0, err
	}

	r.uow.lastOrderID++

	return kernel.NewID(r.uow.lastOrderID)
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.uow.check(ctx); err != nil {
		return err
	}

	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	if _, ok := r.uow.order(dto.ID); ok {
		return errs.NewValueIsInvalidErrorWithCause("order", ErrOrderAlreadyExists)
	}

	r.uow.orders[dto.ID] = dto

	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.uow.check(ctx); err != nil {
		return err
	}

	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	if _, ok := r.uow.order(dto.ID); !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.uow.orders[dto.ID] = dto

	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := r.uow.check(ctx); err != nil {
		return nil, err
	}

	dto, ok := r.uow.order(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return orderToDomain(dto)
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := r.uow.check(ctx); err != nil {
		return nil, err
	}

	merged := maps.Clone(r.uow.store.orders)
	maps.Copy(merged, r.uow.orders)

	return ordersToDomain(merged)
}
