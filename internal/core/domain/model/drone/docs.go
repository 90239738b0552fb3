// Package drone contains the Drone aggregate: one delivery unit of the fixed fleet.
//
// A drone is a logical resource token. Its only mutable state is the
// availability flag, which is false exactly while the drone is bound to an
// order that has not been delivered yet. Drones are seeded at start-up,
// numbered from 1, and never deleted.
package drone
