package domain

// SaleType classifica uma venda conforme a API de comércio
type SaleType string

const (
	SaleTypeProduct SaleType = "produto"
	SaleTypeService SaleType = "servico"
	SaleTypeCounter SaleType = "vendas_balcao"

	// SaleTypeAll é aceito apenas como filtro; nunca aparece em uma venda normalizada
	SaleTypeAll SaleType = "todos"
)

// AllSaleTypes são os três tipos oficiais consultados individualmente quando o
// filtro é "todos", já que a API upstream aplica um tipo default quando o
// parâmetro é omitido
var AllSaleTypes = []SaleType{SaleTypeProduct, SaleTypeService, SaleTypeCounter}

// UnknownEmployeeName é o sentinela usado quando nem a venda nem o cadastro de
// funcionários resolvem um nome
const UnknownEmployeeName = "Desconhecido"

// Sale é a forma canônica de uma venda, após normalização dos campos
// heterogêneos retornados pela API de comércio
type Sale struct {
	ID           string   `json:"id"`
	Date         *string  `json:"date"` // YYYY-MM-DD; nil quando a data original não é reconhecível
	EmployeeID   *string  `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Type         SaleType `json:"type"`
	Amount       float64  `json:"amount"`
	StoreID      int64    `json:"store_id"`
}

// ValidSaleType informa se o valor pode ser usado como filtro de tipo
func ValidSaleType(t SaleType) bool {
	switch t {
	case SaleTypeProduct, SaleTypeService, SaleTypeCounter, SaleTypeAll:
		return true
	}
	return false
}
