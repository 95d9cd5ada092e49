package get_occupied_dates

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_occupied_dates: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_occupied_dates: internal error")
)
