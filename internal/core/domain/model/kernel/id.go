package kernel

import (
	"fmt"
	"strconv"

	"droncakes/internal/pkg/errs"
)

// ID identifies a drone or an order. Valid identifiers are strictly positive.
type ID int64

// NewID converts a raw integer into an ID, rejecting zero and negative values.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier, as found in URLs and configuration.
func ParseID(s string) (ID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(raw)
}

// Validate reports whether the identifier is usable.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw value for wire and storage representations.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
