package reporting

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	commercedomain "github.com/vfg2006/sales-report-api/infrastructure/integrator/commerce/domain"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Tabelas de candidatos por campo canônico, na ordem de prioridade em que o
// upstream costuma enviá-los. A resolução de cada campo é sempre a primeira
// entrada presente na venda crua. Centralizar as listas aqui mantém a
// normalização auditável quando o upstream muda o esquema.
var (
	saleIDFields       = []string{"id", "codigo", "numero", "documento"}
	employeeIDFields   = []string{"funcionario_id", "vendedor_id", "usuario_id", "atendente_id", "user_id"}
	employeeNameFields = []string{"funcionario_nome", "vendedor_nome", "usuario_nome", "atendente_nome"}
	dateFields         = []string{"data", "data_venda", "data_emissao", "emissao", "created_at", "atualizado_em"}
	amountFields       = []string{"valor_total", "total", "valor"}
	typeTextFields     = []string{"tipo", "tipo_venda"}
)

// NormalizeSale converte uma venda crua na forma canônica. Nunca falha: todo
// campo ausente ou malformado degrada para o default documentado. A mesma
// entrada produz sempre a mesma saída.
func NormalizeSale(raw commercedomain.RawSale, directory map[string]string, storeID int64) *domain.Sale {
	employeeID := firstID(raw, employeeIDFields)

	name := firstString(raw, employeeNameFields)
	if name == "" && employeeID != nil {
		// Preferir o cadastro de funcionários quando a venda não traz nome
		name = directory[*employeeID]
	}
	if name == "" {
		name = domain.UnknownEmployeeName
	}

	return &domain.Sale{
		ID:           stringOrEmpty(firstID(raw, saleIDFields)),
		Date:         normalizeDate(firstString(raw, dateFields)),
		EmployeeID:   employeeID,
		EmployeeName: name,
		Type:         normalizeType(raw),
		Amount:       normalizeAmount(raw),
		StoreID:      storeID,
	}
}

// normalizeType classifica o tipo da venda. Precedência: token textual
// ("servi*" e "balc*", caso-insensitivo), depois código numérico tipo_id
// (2 = serviço, 3 = balcão), por fim produto.
func normalizeType(raw commercedomain.RawSale) domain.SaleType {
	text := strings.ToLower(firstString(raw, typeTextFields))
	if strings.Contains(text, "servi") {
		return domain.SaleTypeService
	}
	if strings.Contains(text, "balc") {
		return domain.SaleTypeCounter
	}

	if code, ok := asNumber(raw["tipo_id"]); ok {
		switch int(code) {
		case 2:
			return domain.SaleTypeService
		case 3:
			return domain.SaleTypeCounter
		}
	}

	return domain.SaleTypeProduct
}

// normalizeDate aceita YYYY-MM-DD (com ou sem hora, truncada em 10
// caracteres) e DD/MM/YYYY (rearranjada). Qualquer outro formato vira nil.
func normalizeDate(raw string) *string {
	if raw == "" {
		return nil
	}

	if isISODatePrefix(raw) {
		date := raw[:10]
		return &date
	}

	if isBRDate(raw) {
		date := raw[6:10] + "-" + raw[3:5] + "-" + raw[0:2]
		return &date
	}

	return nil
}

// normalizeAmount converte o primeiro campo de valor presente em decimal.
// Valores não numéricos, não finitos ou negativos viram 0.
func normalizeAmount(raw commercedomain.RawSale) float64 {
	for _, field := range amountFields {
		value, ok := raw[field]
		if !ok || value == nil {
			continue
		}

		amount, ok := asNumber(value)
		if !ok {
			return 0
		}

		if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
			return 0
		}

		return amount
	}

	return 0
}

// firstID resolve o primeiro candidato presente como identificador textual
func firstID(raw commercedomain.RawSale, fields []string) *string {
	for _, field := range fields {
		value, ok := raw[field]
		if !ok || value == nil {
			continue
		}

		if id := coerceID(value); id != "" {
			return &id
		}
	}

	return nil
}

func firstString(raw commercedomain.RawSale, fields []string) string {
	for _, field := range fields {
		value, ok := raw[field]
		if !ok || value == nil {
			continue
		}

		if s, ok := value.(string); ok && s != "" {
			return s
		}
	}

	return ""
}

// coerceID converte identificadores numéricos ou textuais para string,
// descartando a parte decimal espúria que o JSON introduz em inteiros
func coerceID(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}

	return ""
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}

	return 0, false
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// isISODatePrefix verifica o prefixo YYYY-MM-DD
func isISODatePrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if s[i] != '-' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isBRDate verifica o formato exato DD/MM/YYYY
func isBRDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		if i == 2 || i == 5 {
			if s[i] != '/' {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
