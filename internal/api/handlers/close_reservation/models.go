package close_reservation

import (
	"time"

	closeReservation "github.com/mobisfm/FM-BookingService/internal/usecase/close_reservation"
)

// CloseReservationRequest HTTP request model
type CloseReservationRequest struct {
	FinalKilometers    float64 `json:"finalKilometers"`
	FinalChargePercent float64 `json:"finalChargePercent"`
}

// CloseReservationResponse HTTP response model
type CloseReservationResponse struct {
	ID                   int64   `json:"id"`
	ResourceID           int64   `json:"resourceId"`
	Status               string  `json:"status"`
	InitialKilometers    float64 `json:"initialKilometers"`
	FinalKilometers      float64 `json:"finalKilometers"`
	InitialChargePercent float64 `json:"initialChargePercent"`
	FinalChargePercent   float64 `json:"finalChargePercent"`
	ClosedAt             string  `json:"closedAt"` // ISO 8601
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *closeReservation.Response) *CloseReservationResponse {
	return &CloseReservationResponse{
		ID:                   resp.ID,
		ResourceID:           resp.ResourceID,
		Status:               string(resp.Status),
		InitialKilometers:    resp.InitialKilometers,
		FinalKilometers:      resp.FinalKilometers,
		InitialChargePercent: resp.InitialChargePercent,
		FinalChargePercent:   resp.FinalChargePercent,
		ClosedAt:             resp.ClosedAt.Format(time.RFC3339),
	}
}
