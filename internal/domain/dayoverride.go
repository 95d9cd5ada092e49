package domain

import "time"

// BlockedDay represents a manual closure of a single date for a business
type BlockedDay struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	Motive     string
	Active     bool
	CreatedAt  time.Time
}

// UnblockedDay represents a manual opening of a single date for a business.
// Разблокировка имеет наивысший приоритет: она отменяет и ручную блокировку,
// и закрытие по недельному расписанию на эту дату
type UnblockedDay struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	Motive     string
	Active     bool
	CreatedAt  time.Time
}
