package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/mocks"
	repomocks "github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/internal/cache"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/goals"
	"go.uber.org/mock/gomock"
)

func testConfig(storeIDs ...int64) *config.Config {
	return &config.Config{
		DefaultStoreIDs: storeIDs,
	}
}

func testFilters(storeIDs []int64, saleType domain.SaleType) *domain.ReportFilters {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	return &domain.ReportFilters{
		StartDate: &start,
		EndDate:   &end,
		StoreIDs:  storeIDs,
		Type:      saleType,
	}
}

func TestGenerateSalesReport_EmptyPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return(nil, nil)

	service := NewService(testConfig(428885), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// Período sem vendas produz payload completo e vazio, nunca erro
	assert.NotNil(t, report.Employees)
	assert.Len(t, report.Employees, 0)
	assert.Len(t, report.Daily, 0)
	assert.Equal(t, 0, report.ByType[domain.SaleTypeProduct].Count)
}

func TestGenerateSalesReport_GroupsAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100), "data": "2025-09-10"},
			{"vendedor_id": "8", "vendedor_nome": "Caio", "valor_total": float64(300), "data": "2025-09-10"},
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(50.555), "data": "2025-09-11"},
		}, nil)

	service := NewService(testConfig(428885), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)
	require.Len(t, report.Employees, 2)

	// Ordenação decrescente por valor vendido
	assert.Equal(t, "Caio", report.Employees[0].Name)
	assert.Equal(t, 300.0, report.Employees[0].SoldAmount)
	assert.Equal(t, 1, report.Employees[0].SaleCount)

	// Valores arredondados em duas casas
	assert.Equal(t, "Ana", report.Employees[1].Name)
	assert.Equal(t, 150.56, report.Employees[1].SoldAmount)
	assert.Equal(t, 2, report.Employees[1].SaleCount)

	// Soma das vendas igual ao total por tipo
	assert.Equal(t, 3, report.ByType[domain.SaleTypeProduct].Count)
	assert.Equal(t, 450.56, report.ByType[domain.SaleTypeProduct].Amount)

	// Série diária ordenada por data
	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2025-09-10", report.Daily[0].Date)
	assert.Equal(t, 400.0, report.Daily[0].Amount)
}

func TestGenerateSalesReport_MergesStoresByEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100)},
		}, nil)
	mockCommerce.EXPECT().
		FetchAllSales(int64(338180), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(40)},
		}, nil)

	service := NewService(testConfig(428885, 338180), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885, 338180}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// O mesmo par (id, nome) em lojas diferentes funde em um único resumo
	require.Len(t, report.Employees, 1)
	assert.Equal(t, 140.0, report.Employees[0].SoldAmount)
	assert.Equal(t, 2, report.Employees[0].SaleCount)
}

func TestGenerateSalesReport_SameIDDifferentNameNotMerged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100)},
			{"vendedor_id": "7", "vendedor_nome": "Ana Paula", "valor_total": float64(40)},
		}, nil)

	service := NewService(testConfig(428885), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// A chave de agrupamento é o par literal (id, nome)
	assert.Len(t, report.Employees, 2)
}

func TestGenerateSalesReport_AllTypesFanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil)

	// Filtro "todos" consulta exatamente os três tipos oficiais por loja
	for _, saleType := range domain.AllSaleTypes {
		mockCommerce.EXPECT().
			FetchAllSales(int64(428885), saleType, gomock.Any()).
			Return(nil, nil)
	}

	service := NewService(testConfig(428885), mockCommerce)

	_, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeAll))
	require.NoError(t, err)
}

func TestGenerateSalesReport_StreamFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil).AnyTimes()
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "valor_total": float64(100)},
		}, nil).
		AnyTimes()
	mockCommerce.EXPECT().
		FetchAllSales(int64(338180), domain.SaleTypeProduct, gomock.Any()).
		Return(nil, assert.AnError).
		AnyTimes()

	service := NewService(testConfig(428885, 338180), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885, 338180}, domain.SaleTypeProduct))

	// Falha em qualquer fluxo aborta a agregação inteira, sem payload parcial
	require.Error(t, err)
	assert.Nil(t, report)
}

func TestGenerateSalesReport_DirectoryFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	// Cadastro indisponível: os nomes são derivados das próprias vendas
	mockCommerce.EXPECT().ListEmployees().Return(nil, assert.AnError)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100)},
			{"vendedor_id": "7", "valor_total": float64(50)},
		}, nil)

	service := NewService(testConfig(428885), mockCommerce)

	report, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	require.Len(t, report.Employees, 1)
	assert.Equal(t, "Ana", report.Employees[0].Name)
	assert.Equal(t, 150.0, report.Employees[0].SoldAmount)
}

func TestGenerateSalesReport_NoStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	service := NewService(testConfig(), mockCommerce)

	_, err := service.GenerateSalesReport(testFilters(nil, domain.SaleTypeProduct))
	assert.ErrorIs(t, err, ErrNoStoresConfigured)
}

func TestGenerateSalesReport_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	service := NewService(testConfig(428885), mockCommerce)

	_, err := service.GenerateSalesReport(testFilters([]int64{428885}, "garantia"))
	assert.Error(t, err)
}

func TestGenerateSalesReport_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	// Upstream consultado uma única vez; a segunda chamada sai do cache
	mockCommerce.EXPECT().ListEmployees().Return(nil, nil).Times(1)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100)},
		}, nil).
		Times(1)

	reportCache := cache.NewReportCache(time.Minute, 8)
	service := NewService(testConfig(428885), mockCommerce).WithCache(reportCache)

	first, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	second, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// O cache devolve exatamente o mesmo payload
	assert.Same(t, first, second)
}

func TestGenerateSalesReport_CacheUnaffectedByTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCommerce := mocks.NewMockCommerceIntegrator(ctrl)

	mockCommerce.EXPECT().ListEmployees().Return(nil, nil).Times(1)
	mockCommerce.EXPECT().
		FetchAllSales(int64(428885), domain.SaleTypeProduct, gomock.Any()).
		Return([]commercedomain.RawSale{
			{"vendedor_id": "7", "vendedor_nome": "Ana", "valor_total": float64(100)},
		}, nil).
		Times(1)

	reportCache := cache.NewReportCache(time.Minute, 8)
	service := NewService(testConfig(428885), mockCommerce).WithCache(reportCache)

	first, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// Metas aplicadas ao payload pelo serviço de metas não podem vazar para o
	// cache do motor
	goalRepo := repomocks.NewMockEmployeeGoalRepository(ctrl)
	goalRepo.EXPECT().
		GetByMonth("09-2025").
		Return([]*domain.EmployeeGoal{
			{EmployeeID: "7", Month: "09-2025", TargetAmount: 5000},
		}, nil)

	applied, err := goals.NewService(goalRepo).ApplyTargets(first, "09-2025")
	require.NoError(t, err)
	require.NotNil(t, applied.Employees[0].TargetAmount)

	second, err := service.GenerateSalesReport(testFilters([]int64{428885}, domain.SaleTypeProduct))
	require.NoError(t, err)

	// A segunda chamada sai do cache (Times(1) acima) e continua sem meta
	assert.Same(t, first, second)
	for _, employee := range second.Employees {
		assert.Nil(t, employee.TargetAmount)
	}
}
