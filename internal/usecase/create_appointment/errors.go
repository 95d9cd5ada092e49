package create_appointment

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("create_appointment: invalid input")

	// ErrBusinessNotFound бизнес не найден
	ErrBusinessNotFound = errors.New("create_appointment: business not found")

	// ErrBusinessInactive бизнес деактивирован или пробный период истёк
	ErrBusinessInactive = errors.New("create_appointment: business is not operational")

	// ErrInvalidSlot время начала не является слотом конфигурации
	ErrInvalidSlot = errors.New("create_appointment: start time is not a configured slot")

	// ErrPastDate запись на прошедшую дату или время
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrBusinessClosed бизнес закрыт в этот день
	ErrBusinessClosed = errors.New("create_appointment: business is closed on this date")

	// ErrHoliday дата является национальным праздником
	ErrHoliday = errors.New("create_appointment: date is a public holiday")

	// ErrHolidayUnavailable календарь праздников недоступен
	ErrHolidayUnavailable = errors.New("create_appointment: holiday calendar unavailable")

	// ErrQuotaExceeded превышен недельный лимит активных записей
	ErrQuotaExceeded = errors.New("create_appointment: weekly appointment quota exceeded")

	// ErrSlotTaken слот уже занят активной записью
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("create_appointment: user not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_appointment: internal error")
)
