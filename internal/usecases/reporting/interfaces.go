package reporting

import (
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Reporter define a interface do motor de agregação de vendas
type Reporter interface {
	// GenerateSalesReport calcula o resumo por funcionário para o período,
	// lojas e tipo informados (defaults aplicados quando ausentes)
	GenerateSalesReport(filters *domain.ReportFilters) (*domain.SalesReport, error)
}

// ReportCache guarda o payload mais recente por combinação de filtros.
// A instância pertence ao ponto de entrada do serviço e é injetada no motor,
// nunca estado global do processo.
type ReportCache interface {
	Get(filters *domain.ReportFilters) (*domain.SalesReport, bool)
	Put(filters *domain.ReportFilters, report *domain.SalesReport)
}
