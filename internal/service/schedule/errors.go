package schedule

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("schedule.service: invalid input")

	// ErrAccessDenied операция доступна только администратору бизнеса
	ErrAccessDenied = errors.New("schedule.service: access denied")

	// ErrInvalidConfiguration конфигурация не порождает ни одного слота
	ErrInvalidConfiguration = errors.New("schedule.service: invalid configuration")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
