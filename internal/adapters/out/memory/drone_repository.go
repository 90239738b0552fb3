package memory

import (
	"context"
	"maps"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/pkg/errs"
)

// DroneRepository reads and stages drones inside a unit of work.
type DroneRepository struct {
	uow *UnitOfWork
}

func (r *DroneRepository) List(ctx context.Context) ([]*drone.Drone, error) {
	if err := r.uow.check(ctx); err != nil {
		return nil, err
	}

	merged := maps.Clone(r.uow.store.drones)
	maps.Copy(merged, r.uow.drones)

	return dronesToDomain(merged)
}

func (r *DroneRepository) Get(ctx context.Context, id kernel.ID) (*drone.Drone, error) {
	if err := r.uow.check(ctx); err != nil {
		return nil, err
	}

	dto, ok := r.uow.drone(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("drone", id)
	}

	return droneToDomain(dto)
}

func (r *DroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	if err := r.uow.check(ctx); err != nil {
		return err
	}

	if err := d.Validate(); err != nil {
		return err
	}

	dto := droneFromDomain(d)
	if _, ok := r.uow.drone(dto.ID); !ok {
		return errs.NewObjectNotFoundError("drone", d.ID())
	}

	r.uow.drones[dto.ID] = dto

	return nil
}
