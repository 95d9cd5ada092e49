package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении частичного уникального индекса
	// активных записей (business_id, date, start_time). Это штатный исход
	// гонки двух одновременных бронирований одного слота
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrNoActiveAppointment возвращается, когда переход статуса не выполнен,
	// потому что запись уже не активна (отменена или завершена конкурентно)
	ErrNoActiveAppointment = errors.New("appointment.repository: appointment is not active")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
