package get_availability

import (
	getAvailability "github.com/alexisrr11/turnos-service/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BusinessID int64    `json:"businessId"`
	Date       string   `json:"date"`
	Open       bool     `json:"open"`
	Occupied   []string `json:"occupied"`
	Available  []string `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		BusinessID: resp.BusinessID,
		Date:       resp.Date,
		Open:       resp.Open,
		Occupied:   resp.Occupied,
		Available:  resp.Available,
	}
}
