package holidayapi

import "sync"

// yearCache процессный кэш праздников по годам.
// Заполняется при первом обращении и живёт до перезапуска процесса:
// TTL и инвалидация не нужны, состав праздников года не меняется.
// Конкурентное заполнение одного года идемпотентно - победивший
// набор дат идентичен проигравшему
type yearCache struct {
	mu    sync.RWMutex
	years map[int][]string
}

func newYearCache() *yearCache {
	return &yearCache{years: make(map[int][]string)}
}

// Get возвращает закэшированные даты праздников года
func (c *yearCache) Get(year int) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dates, ok := c.years[year]
	return dates, ok
}

// Put сохраняет даты праздников года; повторная запись того же года
// не ломает структуру
func (c *yearCache) Put(year int, dates []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.years[year]; ok {
		return
	}
	c.years[year] = dates
}
