// Package order contains the Order aggregate and its delivery state machine.
//
// An order is bound to exactly one drone for its whole life and moves strictly
// forward through its statuses:
//
//	preparing ──> in-flight ──> delivered
//	    │                          ▲
//	    └──────────────────────────┘
//	       (manual early completion)
//
// delivered is terminal. Orders are never deleted; delivered orders stay
// visible as history. The drone identifier and name are a snapshot taken when
// the order is created.
package order
