package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/alexisrr11/turnos-service/internal/domain"
)

// Границы допустимых лет для запроса праздников
const (
	minYear = 1900
	maxYear = 3000
)

// Client клиент внешнего календаря государственных праздников
type Client struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
	cache       *yearCache
	log         Logger
}

// NewClient создает новый экземпляр клиента календаря праздников
func NewClient(baseURL, countryCode string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: newYearCache(),
		log:   log,
	}
}

// HolidaysForYear возвращает отсортированный список дат праздников года
// в формате YYYY-MM-DD. Успешные ответы кэшируются на время жизни процесса,
// ошибки не кэшируются
func (c *Client) HolidaysForYear(ctx context.Context, year int) ([]string, error) {
	if year < minYear || year > maxYear {
		return nil, fmt.Errorf("%w: %d is out of range [%d, %d]", ErrInvalidYear, year, minYear, maxYear)
	}

	if dates, ok := c.cache.Get(year); ok {
		return dates, nil
	}

	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", c.baseURL, year, c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, fmt.Errorf("%w: year=%d country=%s rejected by upstream", ErrInvalidResponse, year, c.countryCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUpstreamUnavailable, resp.StatusCode, string(body))
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		if h.Date != "" {
			dates = append(dates, h.Date)
		}
	}
	sort.Strings(dates)

	c.cache.Put(year, dates)
	c.log.Info("Holidays for year=%d country=%s loaded: %d dates", year, c.countryCode, len(dates))

	return dates, nil
}

// IsHoliday возвращает true, если дата является праздником
func (c *Client) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	dates, err := c.HolidaysForYear(ctx, date.Year())
	if err != nil {
		return false, err
	}

	formatted := date.Format(domain.DateFormat)
	for _, d := range dates {
		if d == formatted {
			return true, nil
		}
	}

	return false, nil
}

// IsHolidayWithGracefulDegradation возвращает признак праздника с graceful
// degradation: при недоступности календаря дата считается обычным днём.
// Используется только в read-only выдаче доступности - создание записи
// работает со строгим IsHoliday и при недоступности календаря отказывает
func (c *Client) IsHolidayWithGracefulDegradation(ctx context.Context, date time.Time) bool {
	isHoliday, err := c.IsHoliday(ctx, date)
	if err != nil {
		c.log.Error("Holiday calendar unavailable, treating %s as a regular day: %v",
			date.Format(domain.DateFormat), err)
		return false
	}
	return isHoliday
}
