package get_availability

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_availability: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_availability: internal error")
)
