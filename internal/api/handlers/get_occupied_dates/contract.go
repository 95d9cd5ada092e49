package get_occupied_dates

import (
	"context"

	getOccupiedDates "github.com/alexisrr11/turnos-service/internal/usecase/get_occupied_dates"
)

type GetOccupiedDatesUseCase interface {
	Execute(ctx context.Context, req *getOccupiedDates.Request) (*getOccupiedDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
