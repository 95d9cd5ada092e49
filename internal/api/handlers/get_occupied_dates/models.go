package get_occupied_dates

import (
	getOccupiedDates "github.com/alexisrr11/turnos-service/internal/usecase/get_occupied_dates"
)

// OccupiedEntry занятый слот календаря
type OccupiedEntry struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// OccupiedDatesResponse HTTP response model
type OccupiedDatesResponse struct {
	BusinessID int64           `json:"businessId"`
	From       string          `json:"from"`
	To         string          `json:"to"`
	Occupied   []OccupiedEntry `json:"occupied"`
	Available  []string        `json:"availableDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupiedDates.Response) *OccupiedDatesResponse {
	occupied := make([]OccupiedEntry, 0, len(resp.Occupied))
	for _, e := range resp.Occupied {
		occupied = append(occupied, OccupiedEntry{Date: e.Date, StartTime: e.StartTime})
	}

	return &OccupiedDatesResponse{
		BusinessID: resp.BusinessID,
		From:       resp.From,
		To:         resp.To,
		Occupied:   occupied,
		Available:  resp.Available,
	}
}
