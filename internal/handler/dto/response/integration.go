package response

import (
	"platecost/internal/usecase/commands"
)

type ConnectData struct {
	URL string `json:"url"`
}

type LocationsData struct {
	Locations []LocationResponse `json:"locations"`
}

// SelectLocationData echoes the binding that was just written.
type SelectLocationData struct {
	LocationID string `json:"locationId"`
}

type LocationResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    *string `json:"address,omitempty"`
	IsSelected bool    `json:"isSelected"`
}

func FromLocationViews(views []commands.LocationView) []LocationResponse {
	res := make([]LocationResponse, len(views))
	for i, v := range views {
		res[i] = LocationResponse{
			ID:         v.ID,
			Name:       v.Name,
			Address:    v.Address,
			IsSelected: v.IsSelected,
		}
	}
	return res
}
