// Package kernel provides the shared value objects of the drone delivery domain.
//
// ID is the positive integer identifier used by both drones and orders. Drones
// are numbered from 1 in fleet order; orders are numbered from 1 in creation
// order and the sequence never goes backward within a store's lifetime.
package kernel
