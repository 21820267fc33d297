package goals

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var (
	ErrInvalidMonth   = errors.New("mês inválido, formato esperado mm-yyyy")
	ErrNegativeTarget = errors.New("a meta não pode ser negativa")
)

var monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])-\d{4}$`)

type GoalManager interface {
	SetGoal(employeeID, employeeName, month string, targetAmount float64) (*domain.EmployeeGoal, error)
	ListGoals(month string) ([]*domain.EmployeeGoal, error)
	ApplyTargets(report *domain.SalesReport, month string) (*domain.SalesReport, error)
}

type Service struct {
	repository repository.EmployeeGoalRepository
}

func NewService(repository repository.EmployeeGoalRepository) GoalManager {
	return &Service{
		repository: repository,
	}
}

func (s *Service) SetGoal(employeeID, employeeName, month string, targetAmount float64) (*domain.EmployeeGoal, error) {
	if !monthPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}

	if targetAmount < 0 {
		return nil, ErrNegativeTarget
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id da meta")
	}

	goal := &domain.EmployeeGoal{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Month:        month,
		TargetAmount: targetAmount,
	}

	if err := s.repository.SaveOrUpdate(goal); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar a meta do funcionário")
	}

	return goal, nil
}

func (s *Service) ListGoals(month string) ([]*domain.EmployeeGoal, error) {
	if !monthPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}

	goals, err := s.repository.GetByMonth(month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar as metas do mês")
	}

	return goals, nil
}

// ApplyTargets devolve uma cópia do relatório com a meta de cada funcionário
// preenchida a partir das metas cadastradas para o mês. O relatório recebido
// nunca é alterado: o ponteiro pode estar compartilhado com o cache do motor
// de agregação, que só devolve payloads sem meta.
func (s *Service) ApplyTargets(report *domain.SalesReport, month string) (*domain.SalesReport, error) {
	if report == nil || len(report.Employees) == 0 {
		return report, nil
	}

	goals, err := s.ListGoals(month)
	if err != nil {
		return nil, err
	}

	if len(goals) == 0 {
		return report, nil
	}

	byEmployee := make(map[string]float64, len(goals))
	for _, goal := range goals {
		byEmployee[goal.EmployeeID] = goal.TargetAmount
	}

	applied := *report
	applied.Employees = make([]*domain.EmployeeSummary, len(report.Employees))
	for i, employee := range report.Employees {
		summary := *employee

		if summary.EmployeeID != nil {
			if target, ok := byEmployee[*summary.EmployeeID]; ok {
				amount := target
				summary.TargetAmount = &amount
			}
		}

		applied.Employees[i] = &summary
	}

	return &applied, nil
}
