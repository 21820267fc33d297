package reporting

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce"
	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// ErrNoStoresConfigured indica que nem a requisição nem a configuração
// resolveram uma loja. É um erro de entrada, detectado antes de qualquer
// chamada de rede.
var ErrNoStoresConfigured = errors.New("nenhuma loja informada ou configurada")

// Número máximo de fluxos (loja, tipo) buscados em paralelo
const maxConcurrentStreams = 5

// storeSales é o resultado de um fluxo (loja, tipo) já paginado
type storeSales struct {
	storeID int64
	sales   []commercedomain.RawSale
}

// Service implementa o motor de agregação de vendas
type Service struct {
	cfg             *config.Config
	commerceService commerce.CommerceIntegrator
	cache           ReportCache
	now             func() time.Time
}

// NewService cria uma nova instância do motor de agregação
func NewService(cfg *config.Config, commerceService commerce.CommerceIntegrator) *Service {
	return &Service{
		cfg:             cfg,
		commerceService: commerceService,
		now:             time.Now,
	}
}

// WithCache habilita o cache de relatórios por combinação de filtros
func (s *Service) WithCache(cache ReportCache) *Service {
	s.cache = cache
	return s
}

// GenerateSalesReport orquestra a agregação completa: resolve defaults dos
// filtros, pagina os fluxos (loja, tipo) concorrentemente, normaliza cada
// venda e reduz o conjunto em resumos por funcionário. Qualquer falha de
// fluxo aborta a agregação inteira; nunca é retornado payload parcial.
func (s *Service) GenerateSalesReport(filters *domain.ReportFilters) (*domain.SalesReport, error) {
	if filters == nil {
		filters = &domain.ReportFilters{}
	}

	filters.ResolveDefaults(s.cfg.DefaultStoreIDs, s.now())

	if !domain.ValidSaleType(filters.Type) {
		return nil, errors.Errorf("tipo de venda inválido: %s", filters.Type)
	}

	if len(filters.StoreIDs) == 0 {
		return nil, ErrNoStoresConfigured
	}

	if s.cache != nil {
		if report, ok := s.cache.Get(filters); ok {
			logrus.WithFields(logrus.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Debug("Relatório servido do cache")
			return report, nil
		}
	}

	period := filters.Period()

	var (
		results   []storeSales
		directory map[string]string
		mutex     sync.Mutex
		firstErr  error
	)

	wg := sync.WaitGroup{}

	// O cadastro de funcionários é buscado em paralelo com as vendas; falha
	// aqui nunca aborta a agregação (ver fallback abaixo)
	wg.Add(1)
	go func() {
		defer wg.Done()
		directory = s.fetchDirectory()
	}()

	// Fan-out pelo produto cartesiano lojas × tipos. Dentro de um fluxo as
	// páginas são sequenciais; entre fluxos não há garantia de ordem.
	semaphore := make(chan struct{}, maxConcurrentStreams)

	for _, storeID := range filters.StoreIDs {
		for _, saleType := range filters.SaleTypes() {
			wg.Add(1)

			go func(storeID int64, saleType domain.SaleType) {
				defer wg.Done()

				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				sales, err := s.commerceService.FetchAllSales(storeID, saleType, period)

				mutex.Lock()
				defer mutex.Unlock()

				if err != nil {
					logrus.WithError(err).WithFields(logrus.Fields{
						"store_id":  storeID,
						"sale_type": saleType,
					}).Error("Erro ao buscar vendas da loja")

					if firstErr == nil {
						firstErr = errors.Wrapf(err, "loja %d tipo %s", storeID, saleType)
					}
					return
				}

				results = append(results, storeSales{storeID: storeID, sales: sales})
			}(storeID, saleType)
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	if len(directory) == 0 {
		directory = deriveDirectory(results)
	}

	report := s.reduce(results, directory, period)

	if s.cache != nil {
		s.cache.Put(filters, report)
	}

	return report, nil
}

// fetchDirectory tenta o cadastro de funcionários; em falha retorna nil e o
// cadastro é derivado das próprias vendas
func (s *Service) fetchDirectory() map[string]string {
	employees, err := s.commerceService.ListEmployees()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar cadastro de funcionários, derivando das vendas")
		return nil
	}

	directory := make(map[string]string, len(employees))
	for _, e := range employees {
		if e.ID != "" && e.Name != "" {
			directory[e.ID] = e.Name
		}
	}

	return directory
}

// deriveDirectory monta o cadastro com os pares (id, nome) presentes nas
// vendas já buscadas. Um cadastro vazio é válido.
func deriveDirectory(results []storeSales) map[string]string {
	directory := make(map[string]string)

	for _, result := range results {
		for _, raw := range result.sales {
			id := firstID(raw, employeeIDFields)
			name := firstString(raw, employeeNameFields)
			if id != nil && name != "" {
				directory[*id] = name
			}
		}
	}

	return directory
}

// employeeKey é a chave literal de agrupamento: mesmo id com nomes
// resolvidos diferentes NÃO se funde
type employeeKey struct {
	id   string
	name string
}

// reduce normaliza cada venda crua e acumula os resumos por funcionário, a
// série diária e os totais por tipo
func (s *Service) reduce(results []storeSales, directory map[string]string, period domain.Period) *domain.SalesReport {
	summaries := make(map[employeeKey]*domain.EmployeeSummary)
	order := make([]employeeKey, 0)

	byType := map[domain.SaleType]*domain.TypeBreakdown{
		domain.SaleTypeProduct: {},
		domain.SaleTypeService: {},
		domain.SaleTypeCounter: {},
	}
	dailyTotals := make(map[string]float64)

	nullDates := 0
	unknownEmployees := 0
	totalSales := 0

	for _, result := range results {
		for _, raw := range result.sales {
			sale := NormalizeSale(raw, directory, result.storeID)
			totalSales++

			key := employeeKey{name: sale.EmployeeName}
			if sale.EmployeeID != nil {
				key.id = *sale.EmployeeID
			}

			summary, exists := summaries[key]
			if !exists {
				summary = &domain.EmployeeSummary{
					EmployeeID: sale.EmployeeID,
					Name:       sale.EmployeeName,
				}
				summaries[key] = summary
				order = append(order, key)
			}

			summary.SoldAmount += sale.Amount
			summary.SaleCount++

			byType[sale.Type].Count++
			byType[sale.Type].Amount += sale.Amount

			// Vendas sem data válida contam nos totais mas ficam fora da
			// série diária
			if sale.Date != nil {
				dailyTotals[*sale.Date] += sale.Amount
			} else {
				nullDates++
			}

			if sale.EmployeeName == domain.UnknownEmployeeName {
				unknownEmployees++
			}
		}
	}

	employees := make([]*domain.EmployeeSummary, 0, len(order))
	for _, key := range order {
		summary := summaries[key]
		summary.SoldAmount = utils.RoundWithTwoDecimalPlace(summary.SoldAmount)
		employees = append(employees, summary)
	}

	// Ordenação decrescente por valor vendido; empates preservam a ordem de
	// primeira ocorrência
	sort.SliceStable(employees, func(i, j int) bool {
		return employees[i].SoldAmount > employees[j].SoldAmount
	})

	for _, breakdown := range byType {
		breakdown.Amount = utils.RoundWithTwoDecimalPlace(breakdown.Amount)
	}

	daily := make([]domain.DailyTotal, 0, len(dailyTotals))
	for date, amount := range dailyTotals {
		daily = append(daily, domain.DailyTotal{Date: date, Amount: utils.RoundWithTwoDecimalPlace(amount)})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	// Anomalias de normalização nunca viram erro; ficam visíveis só no log
	logrus.WithFields(logrus.Fields{
		"sales":             totalSales,
		"employees":         len(employees),
		"null_dates":        nullDates,
		"unknown_employees": unknownEmployees,
	}).Debug("Redução do relatório concluída")

	return &domain.SalesReport{
		Period:    period,
		Employees: employees,
		ByType:    byType,
		Daily:     daily,
	}
}
