package holidayapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestServer(t *testing.T, status int, body string, hits *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		assert.Equal(t, "/api/v3/PublicHolidays/2026/AR", r.URL.Path)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestClient_HolidaysForYear_CachesSuccess(t *testing.T) {
	var hits int64
	srv := newTestServer(t, http.StatusOK, `[
		{"date": "2026-07-09", "localName": "Día de la Independencia", "name": "Independence Day"},
		{"date": "2026-01-01", "localName": "Año Nuevo", "name": "New Year's Day"}
	]`, &hits)
	defer srv.Close()

	client := NewClient(srv.URL, "AR", time.Second, nopLogger{})

	dates, err := client.HolidaysForYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-01", "2026-07-09"}, dates, "dates come back sorted")

	// Второй запрос обслуживается из кеша
	dates, err = client.HolidaysForYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Len(t, dates, 2)
	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
}

func TestClient_HolidaysForYear_DoesNotCacheFailures(t *testing.T) {
	var hits int64
	srv := newTestServer(t, http.StatusInternalServerError, "boom", &hits)
	defer srv.Close()

	client := NewClient(srv.URL, "AR", time.Second, nopLogger{})

	_, err := client.HolidaysForYear(context.Background(), 2026)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	_, err = client.HolidaysForYear(context.Background(), 2026)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)

	assert.Equal(t, int64(2), atomic.LoadInt64(&hits), "failed responses must not be cached")
}

func TestClient_HolidaysForYear_InvalidYear(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "AR", time.Second, nopLogger{})

	_, err := client.HolidaysForYear(context.Background(), 1812)
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = client.HolidaysForYear(context.Background(), 3001)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestClient_HolidaysForYear_RejectedCountry(t *testing.T) {
	var hits int64
	srv := newTestServer(t, http.StatusNotFound, "", &hits)
	defer srv.Close()

	client := NewClient(srv.URL, "AR", time.Second, nopLogger{})

	_, err := client.HolidaysForYear(context.Background(), 2026)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_IsHoliday(t *testing.T) {
	var hits int64
	srv := newTestServer(t, http.StatusOK, `[{"date": "2026-07-09"}]`, &hits)
	defer srv.Close()

	client := NewClient(srv.URL, "AR", time.Second, nopLogger{})

	holiday, err := client.IsHoliday(context.Background(), time.Date(2026, 7, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, holiday)

	holiday, err = client.IsHoliday(context.Background(), time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, holiday)
}

func TestClient_IsHolidayWithGracefulDegradation(t *testing.T) {
	// Сервер недоступен: день считается обычным, ошибки наружу нет
	client := NewClient("http://127.0.0.1:1", "AR", 100*time.Millisecond, nopLogger{})

	holiday := client.IsHolidayWithGracefulDegradation(context.Background(), time.Date(2026, 7, 9, 0, 0, 0, 0, time.UTC))
	assert.False(t, holiday)
}
