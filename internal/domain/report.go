package domain

import "time"

// Period é o intervalo de datas (inclusivo) de um relatório
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EmployeeSummary agrega as vendas de um par (funcionário, nome).
// TargetAmount é sempre nil quando produzido pelo motor de agregação; a meta é
// atribuída pelo serviço de metas ao montar o relatório mensal.
type EmployeeSummary struct {
	EmployeeID   *string  `json:"employee_id"`
	Name         string   `json:"name"`
	SoldAmount   float64  `json:"sold_amount"`
	SaleCount    int      `json:"sale_count"`
	TargetAmount *float64 `json:"target_amount"`
}

// TypeBreakdown totaliza quantidade e valor por tipo de venda
type TypeBreakdown struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DailyTotal é o faturamento somado de um dia do período
type DailyTotal struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SalesReport é o payload final do motor de agregação.
// Employees vem ordenado por SoldAmount decrescente; empates mantêm a ordem de
// primeira ocorrência.
type SalesReport struct {
	Period    Period                      `json:"period"`
	Employees []*EmployeeSummary          `json:"employees"`
	ByType    map[SaleType]*TypeBreakdown `json:"by_type"`
	Daily     []DailyTotal                `json:"daily"`
}

// MonthlyReportSnapshot é um relatório pré-calculado persistido pelo agendador
// mensal, identificado pelo mês (mm-yyyy) e pelo conjunto de lojas usado
type MonthlyReportSnapshot struct {
	ID        int64        `json:"id"`
	Month     string       `json:"month"`
	StoreKey  string       `json:"store_key"`
	Report    *SalesReport `json:"report"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// EmployeeGoal é a meta mensal de vendas de um funcionário
type EmployeeGoal struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Month        string    `json:"month"` // mm-yyyy
	TargetAmount float64   `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
