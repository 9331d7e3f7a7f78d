package request

type SelectLocationRequest struct {
	LocationID string `json:"locationId" binding:"required"`
}
