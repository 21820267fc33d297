package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func TestNormalizeSale(t *testing.T) {
	tests := []struct {
		name      string
		raw       commercedomain.RawSale
		directory map[string]string
		validate  func(t *testing.T, sale *domain.Sale)
	}{
		{
			name: "Venda de serviço com valor em string e vendedor numérico",
			raw: commercedomain.RawSale{
				"tipo":          "Serviço Premium",
				"valor_total":   "250.50",
				"vendedor_id":   float64(7),
				"vendedor_nome": "Ana",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, domain.SaleTypeService, sale.Type)
				assert.Equal(t, 250.50, sale.Amount)
				require.NotNil(t, sale.EmployeeID)
				assert.Equal(t, "7", *sale.EmployeeID)
				assert.Equal(t, "Ana", sale.EmployeeName)
			},
		},
		{
			name: "Data brasileira é rearranjada para ISO",
			raw: commercedomain.RawSale{
				"data": "28/09/2025",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				require.NotNil(t, sale.Date)
				assert.Equal(t, "2025-09-28", *sale.Date)
			},
		},
		{
			name: "Data ISO com hora é truncada em dez caracteres",
			raw: commercedomain.RawSale{
				"data_emissao": "2025-09-28T14:30:00Z",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				require.NotNil(t, sale.Date)
				assert.Equal(t, "2025-09-28", *sale.Date)
			},
		},
		{
			name: "Data irreconhecível vira nil",
			raw: commercedomain.RawSale{
				"data": "ontem",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Nil(t, sale.Date)
			},
		},
		{
			name: "Campos de data respeitam a ordem de prioridade",
			raw: commercedomain.RawSale{
				"created_at": "2025-01-01",
				"data_venda": "2025-03-15",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				require.NotNil(t, sale.Date)
				assert.Equal(t, "2025-03-15", *sale.Date)
			},
		},
		{
			name: "Tipo balcão por token textual",
			raw: commercedomain.RawSale{
				"tipo": "Venda Balcão",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, domain.SaleTypeCounter, sale.Type)
			},
		},
		{
			name: "Tipo serviço pelo código numérico quando não há token",
			raw: commercedomain.RawSale{
				"tipo_id": float64(2),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, domain.SaleTypeService, sale.Type)
			},
		},
		{
			name: "Token textual tem precedência sobre o código",
			raw: commercedomain.RawSale{
				"tipo":    "balcao",
				"tipo_id": float64(2),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, domain.SaleTypeCounter, sale.Type)
			},
		},
		{
			name: "Sem tipo reconhecível o default é produto",
			raw:  commercedomain.RawSale{},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, domain.SaleTypeProduct, sale.Type)
			},
		},
		{
			name: "Valor não numérico degrada para zero",
			raw: commercedomain.RawSale{
				"valor_total": "abc",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 0.0, sale.Amount)
			},
		},
		{
			name: "Valor negativo degrada para zero",
			raw: commercedomain.RawSale{
				"total": float64(-10),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 0.0, sale.Amount)
			},
		},
		{
			name: "Primeiro campo de valor presente vence mesmo valendo zero",
			raw: commercedomain.RawSale{
				"valor_total": float64(0),
				"total":       float64(99),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 0.0, sale.Amount)
			},
		},
		{
			name: "Nome resolvido pelo cadastro quando a venda só traz o id",
			raw: commercedomain.RawSale{
				"funcionario_id": "15",
			},
			directory: map[string]string{"15": "Bruno"},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, "Bruno", sale.EmployeeName)
			},
		},
		{
			name: "Sem id nem nome o sentinela é aplicado",
			raw: commercedomain.RawSale{
				"valor_total": float64(10),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Nil(t, sale.EmployeeID)
				assert.Equal(t, domain.UnknownEmployeeName, sale.EmployeeName)
			},
		},
		{
			name: "Id numérico inteiro não carrega casa decimal espúria",
			raw: commercedomain.RawSale{
				"funcionario_id": float64(42),
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				require.NotNil(t, sale.EmployeeID)
				assert.Equal(t, "42", *sale.EmployeeID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := NormalizeSale(tt.raw, tt.directory, 428885)
			assert.Equal(t, int64(428885), sale.StoreID)
			tt.validate(t, sale)
		})
	}
}

func TestNormalizeSaleInvariants(t *testing.T) {
	raws := []commercedomain.RawSale{
		{},
		{"tipo": "qualquer", "valor_total": "xyz"},
		{"tipo_id": float64(3), "total": float64(12.3), "data": "01/02/2024"},
		{"vendedor_id": "9", "valor": float64(1.119)},
	}

	for _, raw := range raws {
		first := NormalizeSale(raw, nil, 1)
		second := NormalizeSale(raw, nil, 1)

		// Determinismo: a mesma entrada produz sempre a mesma saída
		assert.Equal(t, first, second)

		// O valor nunca é negativo e o tipo nunca é o filtro "todos"
		assert.GreaterOrEqual(t, first.Amount, 0.0)
		assert.Contains(t, domain.AllSaleTypes, first.Type)
		assert.NotEmpty(t, first.EmployeeName)
	}
}
