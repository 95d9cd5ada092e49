package appointments

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("appointments.service: invalid input")

	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("appointments.service: appointment not found")

	// ErrAccessDenied нет прав на операцию с этой записью
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrAlreadyFinalized запись уже отменена или завершена
	ErrAlreadyFinalized = errors.New("appointments.service: appointment already finalized")

	// ErrAlreadyCancelled попытка завершить отменённую запись
	ErrAlreadyCancelled = errors.New("appointments.service: appointment already cancelled")

	// ErrCancellationWindowClosed до начала записи осталось меньше допустимого срока
	ErrCancellationWindowClosed = errors.New("appointments.service: cancellation window closed")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
