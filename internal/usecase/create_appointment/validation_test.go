package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	valid := func() *Request {
		return &Request{
			Identity:  domain.Identity{UserID: 1, BusinessID: 2, Role: domain.RoleUser},
			Service:   "corte de pelo",
			Date:      date,
			StartTime: "10:00",
		}
	}

	tests := []struct {
		name   string
		mutate func(r *Request)
		ok     bool
	}{
		{"valid request", func(r *Request) {}, true},
		{"missing user id", func(r *Request) { r.Identity.UserID = 0 }, false},
		{"missing business id", func(r *Request) { r.Identity.BusinessID = 0 }, false},
		{"empty service", func(r *Request) { r.Service = "   " }, false},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, false},
		{"empty start time", func(r *Request) { r.StartTime = "" }, false},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestValidateNotPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	day := func(s string) time.Time {
		d, _ := time.Parse(domain.DateFormat, s)
		return d
	}

	tests := []struct {
		name      string
		date      time.Time
		startTime string
		wantErr   error
	}{
		{"future date", day("2026-09-16"), "09:00", nil},
		{"yesterday", day("2026-09-14"), "18:00", ErrPastDate},
		{"today later slot", day("2026-09-15"), "11:00", nil},
		{"today slot starting right now", day("2026-09-15"), "10:00", nil},
		{"today earlier slot", day("2026-09-15"), "09:00", ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNotPast(tt.date, types.TimeString(tt.startTime), now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
