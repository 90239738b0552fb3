package commands

import (
	"errors"
	"strings"

	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request for a cake delivery.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Ana", "chocolate")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoCapacity) {
//	    // every drone is busy, ask the customer to retry later
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	flavor       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that customer name and flavor are not blank.
// Both problems are reported together as errs.ValueIsRequiredError values.
func NewCreateOrderCommand(customerName, flavor string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setFlavor(flavor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) Flavor() string {
	return c.flavor
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return order.ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setFlavor(flavor string) error {
	if strings.TrimSpace(flavor) == "" {
		return order.ErrFlavorIsRequired
	}
	c.flavor = flavor
	return nil
}
