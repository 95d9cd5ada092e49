package domain

import "time"

// Business represents a tenant: a company that owns a schedule and appointments
type Business struct {
	ID            int64
	Name          string
	TrialStartsAt time.Time
	TrialEndsAt   time.Time
	Active        bool
	CreatedAt     time.Time
}

// InTrial returns true if now falls inside the trial window
func (b *Business) InTrial(now time.Time) bool {
	return !now.Before(b.TrialStartsAt) && !now.After(b.TrialEndsAt)
}

// IsOperational returns true if the business can accept new appointments
// Бизнес принимает записи пока активен и не истёк пробный период
func (b *Business) IsOperational(now time.Time) bool {
	if !b.Active {
		return false
	}
	if b.TrialEndsAt.IsZero() {
		return true
	}
	return b.InTrial(now)
}
