package domain

import "time"

// ReportFilters são os parâmetros de entrada do motor de agregação.
// Campos ausentes são resolvidos por ResolveDefaults antes de qualquer
// chamada à API upstream.
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	StoreIDs  []int64
	Type      SaleType
}

// ResolveDefaults aplica os defaults do contrato de entrada: período ausente
// vira o mês-calendário corrente (relógio local, não UTC), lista de lojas
// ausente cai para a lista configurada e tipo ausente vira "todos". Quando só
// um dos limites vem preenchido, ele é respeitado e o outro é completado com
// o limite correspondente do mesmo mês.
func (f *ReportFilters) ResolveDefaults(defaultStoreIDs []int64, now time.Time) {
	switch {
	case f.StartDate == nil && f.EndDate == nil:
		start, end := MonthBounds(now)
		f.StartDate = &start
		f.EndDate = &end
	case f.StartDate == nil:
		start, _ := MonthBounds(*f.EndDate)
		f.StartDate = &start
	case f.EndDate == nil:
		_, end := MonthBounds(*f.StartDate)
		f.EndDate = &end
	}

	if len(f.StoreIDs) == 0 {
		f.StoreIDs = append(f.StoreIDs, defaultStoreIDs...)
	}

	if f.Type == "" {
		f.Type = SaleTypeAll
	}
}

// Period retorna o período resolvido dos filtros
func (f *ReportFilters) Period() Period {
	p := Period{}
	if f.StartDate != nil {
		p.Start = *f.StartDate
	}
	if f.EndDate != nil {
		p.End = *f.EndDate
	}
	return p
}

// SaleTypes retorna os tipos que devem ser consultados individualmente no
// upstream para este filtro
func (f *ReportFilters) SaleTypes() []SaleType {
	if f.Type == SaleTypeAll {
		return AllSaleTypes
	}
	return []SaleType{f.Type}
}

// MonthBounds calcula o primeiro e o último dia do mês-calendário de ref
func MonthBounds(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
