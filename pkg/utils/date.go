package utils

import "time"

// ParseDate converte uma data YYYY-MM-DD dos parâmetros de consulta.
// String vazia retorna nil sem erro; o chamador aplica o default de período.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
