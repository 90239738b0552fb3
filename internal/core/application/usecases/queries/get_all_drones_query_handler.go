package queries

import (
	"context"

	"droncakes/internal/core/ports"
)

// GetAllDronesQueryHandler reads the fleet from the read model.
type GetAllDronesQueryHandler struct {
	readModel ports.ReadModel
}

func NewGetAllDronesQueryHandler(readModel ports.ReadModel) GetAllDronesQueryHandler {
	return GetAllDronesQueryHandler{readModel: readModel}
}

// Handle returns every drone in ascending id order. The slice is never nil.
func (h GetAllDronesQueryHandler) Handle(ctx context.Context, query GetAllDronesQuery) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones, err := h.readModel.Drones(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DroneResponse, 0, len(drones))
	for _, d := range drones {
		result = append(result, NewDroneResponse(d))
	}

	return result, nil
}
