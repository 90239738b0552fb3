// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a unit of work around
// the reads and writes, commit, then side effects on the scheduler.
package commands

import (
	"context"
	"time"

	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DroneRepoFactory provides access to the drone registry within a transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// OrderRepoFactory provides access to the order store within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DroneUoW manages transactions for registry-only operations.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates new drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// UoW manages transactions across both drone and order aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   droneRepo := uow.DroneRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DroneRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// StatusScheduler plans the automatic status transitions of orders.
// Tasks are keyed by order so that they can be dropped once the order is delivered.
type StatusScheduler interface {
	// Schedule arranges for the order to be advanced to target at the given time.
	Schedule(orderID kernel.ID, at time.Time, target order.Status)

	// Cancel drops every pending task of the order.
	Cancel(orderID kernel.ID)

	// CancelAll drops every pending task and waits for running ones to finish.
	CancelAll()
}

// FleetResetter restores the seed fleet and clears all orders.
type FleetResetter interface {
	Reset(ctx context.Context) error
}
