package holidayapi

// Holiday модель праздника из внешнего календаря
type Holiday struct {
	Date      string `json:"date"` // "2025-01-01"
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
