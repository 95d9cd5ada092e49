package get_availability

import "time"

// Request модель запроса доступности на дату
type Request struct {
	BusinessID int64     // ID бизнеса
	Date       time.Time // Дата (без времени)
}

// Response слоты бизнеса на дату
type Response struct {
	BusinessID int64    // ID бизнеса
	Date       string   // Дата в формате YYYY-MM-DD
	Open       bool     // Принимает ли бизнес записи в этот день
	Occupied   []string // Занятые слоты, отсортированы
	Available  []string // Свободные слоты, отсортированы; пусто для закрытого дня
}
