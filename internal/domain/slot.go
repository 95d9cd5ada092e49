package domain

import "github.com/alexisrr11/turnos-service/pkg/types"

// GenerateSlots генерирует упорядоченный список слотов от open до close
// с шагом durationMinutes. Слот включается, только если он целиком
// помещается до времени закрытия (offset + duration <= close).
// Возвращает пустой список при duration <= 0 или close <= open.
// Функция чистая и детерминированная
func GenerateSlots(open, close types.TimeString, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes <= 0 {
		return slots
	}

	openOffset, err := open.Minutes()
	if err != nil {
		return slots
	}
	closeOffset, err := close.Minutes()
	if err != nil {
		return slots
	}
	if closeOffset <= openOffset {
		return slots
	}

	for offset := openOffset; offset+durationMinutes <= closeOffset; offset += durationMinutes {
		slot, err := types.TimeString("00:00").AddMinutes(offset)
		if err != nil {
			return slots
		}
		slots = append(slots, slot)
	}

	return slots
}
