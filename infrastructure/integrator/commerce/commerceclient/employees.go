package commerceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"

	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
)

// GetEmployees busca a primeira página do cadastro de funcionários.
// O cadastro é opcional no upstream; quando a chamada falha o motor de
// relatórios deriva os funcionários das próprias vendas.
func (c *CommerceClient) GetEmployees() (*commercedomain.EmployeesPage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.Commerce.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/funcionarios")

	query := endpoint.Query()
	query.Set("pagina", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp)
	}

	var page commercedomain.EmployeesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &page, nil
}
