package domain

import "time"

// WeekBounds возвращает границы ISO недели (понедельник-воскресенье),
// в которую попадает date. Обе границы обнулены по времени,
// end указывает на воскресенье (включительно)
func WeekBounds(date time.Time) (start, end time.Time) {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	// time.Weekday: Sunday=0, для ISO недели воскресенье считается седьмым днём
	offset := int(dateOnly.Weekday())
	if offset == 0 {
		offset = 7
	}

	start = dateOnly.AddDate(0, 0, -(offset - 1))
	end = start.AddDate(0, 0, 6)
	return start, end
}
