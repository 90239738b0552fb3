// Package services provides domain services that span the drone and order
// aggregates.
//
// The package includes:
//   - DroneDispatcher: selects and reserves the drone for a new order
//   - DeliverySchedule: the timing policy of the automatic status transitions
package services
