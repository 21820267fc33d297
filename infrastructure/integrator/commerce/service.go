package commerce

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/commerceclient"
	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

type CommerceIntegrator interface {
	FetchAllSales(storeID int64, saleType domain.SaleType, period domain.Period) ([]commercedomain.RawSale, error)
	ListEmployees() ([]domain.Employee, error)
}

type CommerceService struct {
	cfg      *config.Config
	Client   commerceclient.Client
	pageSize int
}

func New(cfg *config.Config, client commerceclient.Client) CommerceIntegrator {
	pageSize := cfg.Commerce.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	return &CommerceService{
		cfg:      cfg,
		Client:   client,
		pageSize: pageSize,
	}
}

// FetchAllSales percorre todas as páginas de vendas de uma loja para um tipo
// dentro do período. As páginas são buscadas em sequência, pois a página seguinte
// depende do sinal de continuação da anterior. A sequência termina quando o
// upstream informa explicitamente que não há próxima página ou, na ausência de
// metadados, quando a página vem curta ou vazia.
func (s *CommerceService) FetchAllSales(storeID int64, saleType domain.SaleType, period domain.Period) ([]commercedomain.RawSale, error) {
	sales := make([]commercedomain.RawSale, 0)
	page := 1

	for {
		resp, err := s.Client.GetSalesPage(commerceclient.SalesPageParams{
			StoreID:   storeID,
			StartDate: period.Start.Format(time.DateOnly),
			EndDate:   period.End.Format(time.DateOnly),
			Type:      string(saleType),
			Page:      page,
		})
		if err != nil {
			return nil, err
		}

		sales = append(sales, resp.Data...)

		// Página vazia encerra a sequência mesmo que o meta aponte continuação
		if len(resp.Data) == 0 {
			break
		}

		next, hasMeta := resp.NextPage()
		if hasMeta {
			// Contrato explícito: proxima_pagina zerada encerra a sequência
			if next <= 0 {
				break
			}
			page = next
			continue
		}

		// Heurística de página curta para respostas sem metadados
		if len(resp.Data) < s.pageSize {
			break
		}
		page++
	}

	logrus.WithFields(logrus.Fields{
		"store_id":   storeID,
		"sale_type":  saleType,
		"start_date": period.Start.Format(time.DateOnly),
		"end_date":   period.End.Format(time.DateOnly),
		"sales":      len(sales),
		"pages":      page,
	}).Debug("Paginação de vendas concluída")

	return sales, nil
}

// ListEmployees busca o cadastro de funcionários do upstream
func (s *CommerceService) ListEmployees() ([]domain.Employee, error) {
	page, err := s.Client.GetEmployees()
	if err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(page.Data))
	for _, f := range page.Data {
		employees = append(employees, domain.Employee{
			ID:   f.ID.String(),
			Name: f.Nome,
		})
	}

	return employees, nil
}
