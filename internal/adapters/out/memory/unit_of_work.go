package memory

import (
	"context"
	"errors"
	"maps"

	"droncakes/internal/core/ports"
)

var ErrTransactionIsNotActive = errors.New("transaction is not active")

// UnitOfWorkFactory creates units of work over one store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. Instances must not be shared between goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes against the store while holding its write lock.
type UnitOfWork struct {
	store  *Store
	active bool

	drones      map[int64]DroneDTO
	orders      map[int64]OrderDTO
	lastOrderID int64
}

// Begin blocks until no other unit of work is active on the store.
// Calling it again on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()

	uow.active = true
	uow.drones = make(map[int64]DroneDTO)
	uow.orders = make(map[int64]OrderDTO)
	uow.lastOrderID = uow.store.lastOrderID

	return nil
}

// Commit applies the staged drones, orders and id sequence, then releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}

	maps.Copy(uow.store.drones, uow.drones)
	maps.Copy(uow.store.orders, uow.orders)
	uow.store.lastOrderID = uow.lastOrderID

	uow.end()

	return nil
}

// Rollback discards staged changes, including allocated order ids.
// Calling it after Commit does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.end()

	return nil
}

func (uow *UnitOfWork) end() {
	uow.drones = nil
	uow.orders = nil
	uow.active = false
	uow.store.mu.Unlock()
}

func (uow *UnitOfWork) DroneRepository() ports.DroneRepository {
	return &DroneRepository{uow: uow}
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) check(ctx context.Context) error {
	if !uow.active {
		return ErrTransactionIsNotActive
	}
	return ctx.Err()
}

// drone returns the staged version of a drone if there is one.
func (uow *UnitOfWork) drone(id int64) (DroneDTO, bool) {
	if dto, ok := uow.drones[id]; ok {
		return dto, true
	}
	dto, ok := uow.store.drones[id]
	return dto, ok
}

func (uow *UnitOfWork) order(id int64) (OrderDTO, bool) {
	if dto, ok := uow.orders[id]; ok {
		return dto, true
	}
	dto, ok := uow.store.orders[id]
	return dto, ok
}
