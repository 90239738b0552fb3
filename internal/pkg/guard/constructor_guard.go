// Package guard provides the constructor guard used by domain objects, commands and queries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value is
// "not constructed", so a struct literal that skips the constructor fails Validate.
//
// Example usage:
//
//	var ErrDroneNotConstructed = errors.New("Drone must be created via NewDrone")
//
//	type Drone struct {
//	    id    kernel.ID
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDrone(id kernel.ID, name string) (*Drone, error) {
//	    return &Drone{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d *Drone) Validate() error {
//	    return d.guard.Validate(ErrDroneNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
