package memory

import (
	"time"

	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
)

// DroneDTO is the stored form of a drone.
type DroneDTO struct {
	ID        int64
	Name      string
	Available bool
}

// OrderDTO is the stored form of an order. DeliveredAt is nil until the
// order reaches its terminal status.
type OrderDTO struct {
	ID                  int64
	CustomerName        string
	Flavor              string
	DroneID             int64
	DroneName           string
	Status              int
	CreatedAt           time.Time
	EstimatedDeliveryAt time.Time
	DeliveredAt         *time.Time
}

func droneFromDomain(d *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:        d.ID().Int64(),
		Name:      d.Name(),
		Available: d.IsAvailable(),
	}
}

func droneToDomain(dto DroneDTO) (*drone.Drone, error) {
	return drone.RestoreDrone(kernel.ID(dto.ID), dto.Name, dto.Available)
}

func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  o.ID().Int64(),
		CustomerName:        o.CustomerName(),
		Flavor:              o.Flavor(),
		DroneID:             o.DroneID().Int64(),
		DroneName:           o.DroneName(),
		Status:              int(o.Status()),
		CreatedAt:           o.CreatedAt(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		DeliveredAt:         o.DeliveredAt(),
	}
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		kernel.ID(dto.ID),
		dto.CustomerName,
		dto.Flavor,
		kernel.ID(dto.DroneID),
		dto.DroneName,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.EstimatedDeliveryAt,
		dto.DeliveredAt,
	)
}
