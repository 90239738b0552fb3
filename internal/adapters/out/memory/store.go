// Package memory keeps the fleet and the orders in process memory.
//
// A Store is shared by every unit of work and by the read model. A unit of
// work holds the store's write lock from Begin until Commit or Rollback, which
// turns a read-then-write sequence such as "find a free drone, reserve it, add
// the order" into one critical section. Writes are staged on the unit of work
// and only reach the store on Commit.
//
// Usage:
//
//	store, err := memory.NewStore(fleet)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	// repository calls through uow.DroneRepository() / uow.OrderRepository()
//
//	return uow.Commit(ctx)
//
// Nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"
)

var ErrFleetIsRequired = errs.NewValueIsRequiredError("fleet")

// Store is the committed state.
type Store struct {
	mu sync.RWMutex

	seed        []DroneDTO
	drones      map[int64]DroneDTO
	orders      map[int64]OrderDTO
	lastOrderID int64
}

// NewStore creates a store seeded with fleet. Reset brings it back to exactly
// this fleet, all drones available.
func NewStore(fleet []*drone.Drone) (*Store, error) {
	if len(fleet) == 0 {
		return nil, ErrFleetIsRequired
	}

	seed := make([]DroneDTO, 0, len(fleet))
	seen := make(map[int64]struct{}, len(fleet))

	for _, d := range fleet {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		dto := droneFromDomain(d)
		if _, ok := seen[dto.ID]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("fleet", errors.New("duplicate drone id "+d.ID().String()))
		}
		seen[dto.ID] = struct{}{}

		dto.Available = true
		seed = append(seed, dto)
	}

	s := &Store{seed: seed}
	s.reset()

	return s, nil
}

// Reset restores the seed fleet and drops every order. Order ids keep counting,
// so an id handed out before the reset is never reused.
// It waits for a running unit of work to finish.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()

	return nil
}

func (s *Store) reset() {
	s.drones = make(map[int64]DroneDTO, len(s.seed))
	for _, dto := range s.seed {
		s.drones[dto.ID] = dto
	}
	s.orders = make(map[int64]OrderDTO)
}

// Drones returns the committed fleet in ascending id order.
func (s *Store) Drones(ctx context.Context) ([]*drone.Drone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return dronesToDomain(s.drones)
}

// Orders returns every committed order in ascending id order.
func (s *Store) Orders(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return ordersToDomain(s.orders)
}

// Order returns one committed order or errs.ObjectNotFoundError.
func (s *Store) Order(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.orders[id.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return orderToDomain(dto)
}

func dronesToDomain(dtos map[int64]DroneDTO) ([]*drone.Drone, error) {
	result := make([]*drone.Drone, 0, len(dtos))

	for _, id := range slices.Sorted(maps.Keys(dtos)) {
		d, err := droneToDomain(dtos[id])
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}

	return result, nil
}

func ordersToDomain(dtos map[int64]OrderDTO) ([]*order.Order, error) {
	result := make([]*order.Order, 0, len(dtos))

	for _, id := range slices.Sorted(maps.Keys(dtos)) {
		o, err := orderToDomain(dtos[id])
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}

	return result, nil
}
