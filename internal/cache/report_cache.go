package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// ReportCache guarda relatórios calculados por combinação de filtros, com TTL
// por entrada e limite de capacidade. A chave é um hash dos filtros; chamadas
// com parâmetros diferentes nunca compartilham entrada. Expiração é verificada
// preguiçosamente na leitura; não há goroutine de limpeza. Escritas
// concorrentes para a mesma chave seguem a política "última escrita vence".
type ReportCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	entries  map[string]*cacheEntry
	now      func() time.Time
}

type cacheEntry struct {
	report    *domain.SalesReport
	expiresAt time.Time
	storedAt  time.Time
}

// NewReportCache cria o cache de relatórios. TTL menor ou igual a zero
// desabilita o cache por completo (toda chamada recomputa).
func NewReportCache(ttl time.Duration, capacity int) *ReportCache {
	if capacity <= 0 {
		capacity = 32
	}

	return &ReportCache{
		ttl:      ttl,
		capacity: capacity,
		entries:  make(map[string]*cacheEntry),
		now:      time.Now,
	}
}

// Get retorna o relatório mais recente para os filtros, se ainda válido
func (c *ReportCache) Get(filters *domain.ReportFilters) (*domain.SalesReport, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	key := cacheKey(filters)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}

	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	return entry.report, true
}

// Put armazena o relatório para os filtros, removendo a entrada mais antiga
// quando a capacidade é excedida
func (c *ReportCache) Put(filters *domain.ReportFilters, report *domain.SalesReport) {
	if c.ttl <= 0 {
		return
	}

	key := cacheKey(filters)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		report:    report,
		expiresAt: now.Add(c.ttl),
		storedAt:  now,
	}

	for len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// evictOldest remove a entrada armazenada há mais tempo. Chamar com o mutex
// já adquirido.
func (c *ReportCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time

	for key, entry := range c.entries {
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// cacheKey canonicaliza os filtros (lojas ordenadas) e devolve o hash SHA-1
// da combinação período + lojas + tipo
func cacheKey(filters *domain.ReportFilters) string {
	stores := make([]string, 0, len(filters.StoreIDs))
	for _, id := range filters.StoreIDs {
		stores = append(stores, strconv.FormatInt(id, 10))
	}
	sort.Strings(stores)

	parts := []string{
		formatDate(filters.StartDate),
		formatDate(filters.EndDate),
		strings.Join(stores, ","),
		string(filters.Type),
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
