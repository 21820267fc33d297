package commercedomain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawSale é uma venda exatamente como a API de comércio devolve: um mapa
// aberto de campos cujos nomes variam entre versões do upstream. Nenhuma
// invariante é garantida aqui; a normalização acontece no motor de relatórios.
type RawSale map[string]any

// PageMeta são os metadados de paginação do envelope de resposta.
// ProximaPagina pode vir como número, string numérica ou simplesmente não
// existir; versões antigas da API não enviam meta nenhum.
type PageMeta struct {
	ProximaPagina json.RawMessage `json:"proxima_pagina,omitempty"`
	TotalPaginas  json.RawMessage `json:"total_paginas,omitempty"`
}

// SalesPage é o envelope de uma página de vendas
type SalesPage struct {
	Data []RawSale `json:"data"`
	Meta *PageMeta `json:"meta,omitempty"`
}

// NextPage interpreta o sinal de continuação do upstream. O segundo retorno
// indica se a resposta carregava o campo proxima_pagina. Quando não carrega,
// o chamador precisa usar a heurística de página curta.
func (p *SalesPage) NextPage() (int, bool) {
	if p.Meta == nil || len(p.Meta.ProximaPagina) == 0 {
		return 0, false
	}

	raw := strings.TrimSpace(string(p.Meta.ProximaPagina))
	if raw == "null" || raw == `""` {
		return 0, true
	}

	raw = strings.Trim(raw, `"`)
	next, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true
	}

	return next, true
}

// Funcionario é uma entrada do cadastro de funcionários do upstream
type Funcionario struct {
	ID   json.Number `json:"id"`
	Nome string      `json:"nome"`
}

// EmployeesPage é o envelope da listagem de funcionários
type EmployeesPage struct {
	Data []Funcionario `json:"data"`
}
