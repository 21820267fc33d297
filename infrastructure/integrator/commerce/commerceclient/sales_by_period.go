package commerceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"

	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

type SalesPageParams struct {
	StoreID   int64
	StartDate string
	EndDate   string
	Type      string
	Page      int
}

// GetSalesPage busca uma página de vendas no período para uma loja.
// A ordenação fixa por código desc espelha o contrato do upstream: a página
// seguinte depende do cursor implícito da anterior.
func (c *CommerceClient) GetSalesPage(params SalesPageParams) (*commercedomain.SalesPage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	// Construir a URL da requisição
	endpoint, err := url.Parse(c.config.Commerce.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/vendas")

	// Adicionar parâmetros de consulta
	query := endpoint.Query()
	query.Set("loja_id", strconv.FormatInt(params.StoreID, 10))
	query.Set("data_inicio", params.StartDate)
	query.Set("data_fim", params.EndDate)
	query.Set("pagina", strconv.Itoa(params.Page))
	query.Set("ordenacao", "codigo")
	query.Set("direcao", "desc")
	if params.Type != "" {
		query.Set("tipo", params.Type)
	}
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

	var page commercedomain.SalesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &page, nil
}

func (c *CommerceClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access-token", c.config.Commerce.AccessToken)
	req.Header.Set("secret-access-token", c.config.Commerce.SecretAccessToken)
}

// upstreamError preserva o status e o corpo da resposta de erro para que o
// chamador final repasse o diagnóstico original do upstream
func upstreamError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err != nil {
		body = nil
	}

	return &apiErrors.UpstreamError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}
