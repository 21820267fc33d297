package commerce

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/commerceclient"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/commerceclient/mocks"
	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testPeriod() domain.Period {
	return domain.Period{
		Start: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	}
}

func rawSales(n int) []commercedomain.RawSale {
	sales := make([]commercedomain.RawSale, n)
	for i := range sales {
		sales[i] = commercedomain.RawSale{"id": float64(i)}
	}
	return sales
}

func newTestService(client commerceclient.Client, pageSize int) CommerceIntegrator {
	cfg := &config.Config{}
	cfg.Commerce.PageSize = pageSize
	return New(cfg, client)
}

func TestFetchAllSales_FollowsNextPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// O sinal explícito de continuação vence a heurística de página curta
	mockClient.EXPECT().
		GetSalesPage(pageParams(1)).
		Return(&commercedomain.SalesPage{
			Data: rawSales(3),
			Meta: &commercedomain.PageMeta{ProximaPagina: json.RawMessage(`2`)},
		}, nil)
	mockClient.EXPECT().
		GetSalesPage(pageParams(2)).
		Return(&commercedomain.SalesPage{
			Data: rawSales(2),
			Meta: &commercedomain.PageMeta{ProximaPagina: json.RawMessage(`null`)},
		}, nil)

	service := newTestService(mockClient, 100)

	sales, err := service.FetchAllSales(428885, domain.SaleTypeProduct, testPeriod())
	require.NoError(t, err)
	assert.Len(t, sales, 5)
}

func TestFetchAllSales_NextPageAsString(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetSalesPage(pageParams(1)).
		Return(&commercedomain.SalesPage{
			Data: rawSales(1),
			Meta: &commercedomain.PageMeta{ProximaPagina: json.RawMessage(`"2"`)},
		}, nil)
	mockClient.EXPECT().
		GetSalesPage(pageParams(2)).
		Return(&commercedomain.SalesPage{
			Data: rawSales(1),
			Meta: &commercedomain.PageMeta{ProximaPagina: json.RawMessage(`null`)},
		}, nil)

	service := newTestService(mockClient, 100)

	sales, err := service.FetchAllSales(428885, domain.SaleTypeProduct, testPeriod())
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestFetchAllSales_ShortPageHeuristic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// Sem metadados: página cheia obriga a tentar a seguinte, mesmo que ela
	// venha vazia
	mockClient.EXPECT().
		GetSalesPage(pageParams(1)).
		Return(&commercedomain.SalesPage{Data: rawSales(100)}, nil)
	mockClient.EXPECT().
		GetSalesPage(pageParams(2)).
		Return(&commercedomain.SalesPage{Data: rawSales(0)}, nil)

	service := newTestService(mockClient, 100)

	sales, err := service.FetchAllSales(428885, domain.SaleTypeProduct, testPeriod())
	require.NoError(t, err)
	assert.Len(t, sales, 100)
}

func TestFetchAllSales_ShortPageStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	// Página curta sem metadados encerra a sequência imediatamente
	mockClient.EXPECT().
		GetSalesPage(pageParams(1)).
		Return(&commercedomain.SalesPage{Data: rawSales(17)}, nil)

	service := newTestService(mockClient, 100)

	sales, err := service.FetchAllSales(428885, domain.SaleTypeProduct, testPeriod())
	require.NoError(t, err)
	assert.Len(t, sales, 17)
}

func TestFetchAllSales_PageErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetSalesPage(pageParams(1)).
		Return(&commercedomain.SalesPage{Data: rawSales(100)}, nil)
	mockClient.EXPECT().
		GetSalesPage(pageParams(2)).
		Return(nil, assert.AnError)

	service := newTestService(mockClient, 100)

	sales, err := service.FetchAllSales(428885, domain.SaleTypeProduct, testPeriod())

	// Falha em qualquer página perde a sequência inteira
	require.Error(t, err)
	assert.Nil(t, sales)
}

func TestListEmployees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	mockClient.EXPECT().
		GetEmployees().
		Return(&commercedomain.EmployeesPage{
			Data: []commercedomain.Funcionario{
				{ID: json.Number("7"), Nome: "Ana"},
				{ID: json.Number("8"), Nome: "Caio"},
			},
		}, nil)

	service := newTestService(mockClient, 100)

	employees, err := service.ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "7", employees[0].ID)
	assert.Equal(t, "Ana", employees[0].Name)
}

func pageParams(page int) commerceclient.SalesPageParams {
	return commerceclient.SalesPageParams{
		StoreID:   428885,
		StartDate: "2025-09-01",
		EndDate:   "2025-09-30",
		Type:      string(domain.SaleTypeProduct),
		Page:      page,
	}
}
