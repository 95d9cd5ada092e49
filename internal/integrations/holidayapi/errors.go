package holidayapi

import "errors"

var (
	// ErrInvalidYear возвращается при годе вне диапазона [1900, 3000]
	ErrInvalidYear = errors.New("holidayapi client: invalid year")

	// ErrUpstreamUnavailable возвращается, когда внешний календарь праздников
	// недоступен или ответил неуспешным статусом. Результат не кэшируется -
	// следующий вызов повторит запрос
	ErrUpstreamUnavailable = errors.New("holidayapi client: upstream unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе календаря
	ErrInvalidResponse = errors.New("holidayapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidayapi client: internal error")
)
