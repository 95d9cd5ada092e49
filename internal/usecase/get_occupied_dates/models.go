package get_occupied_dates

import "time"

// HorizonDays размер окна календаря от стартовой даты
const HorizonDays = 60

// Request модель запроса календаря занятости
type Request struct {
	BusinessID int64     // ID бизнеса
	From       time.Time // Начало окна (без времени)
}

// OccupiedEntry занятый слот календаря
type OccupiedEntry struct {
	Date      string // Дата в формате YYYY-MM-DD
	StartTime string // Время начала слота
}

// Response календарь занятости бизнеса
type Response struct {
	BusinessID int64           // ID бизнеса
	From       string          // Начало окна
	To         string          // Конец окна (включительно)
	Occupied   []OccupiedEntry // Занятые слоты, отсортированы по дате и времени
	Available  []string        // Открытые даты, где остался хотя бы один свободный слот
}
