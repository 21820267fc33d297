package domain

// Employee é uma entrada do cadastro de funcionários da API de comércio
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
