package commerceclient

import (
	"net/http"
	"time"

	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/config"
)

type Client interface {
	GetSalesPage(params SalesPageParams) (*commercedomain.SalesPage, error)
	GetEmployees() (*commercedomain.EmployeesPage, error)
}

type CommerceClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API de comércio
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Commerce.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &CommerceClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
