package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	employeeGoalsTable = "employee_goals eg"
)

type EmployeeGoalRepository interface {
	GetByMonth(month string) ([]*domain.EmployeeGoal, error)
	SaveOrUpdate(goal *domain.EmployeeGoal) error
}

type employeeGoalRepository struct {
	conn *postgres.Connection
}

func NewEmployeeGoalRepository(conn *postgres.Connection) EmployeeGoalRepository {
	return &employeeGoalRepository{
		conn: conn,
	}
}

func (r *employeeGoalRepository) GetByMonth(month string) ([]*domain.EmployeeGoal, error) {
	query, args, err := squirrel.
		Select("eg.id, eg.employee_id, eg.employee_name, eg.month, eg.target_amount, eg.created_at, eg.updated_at").
		From(employeeGoalsTable).
		Where(squirrel.Eq{"eg.month": month}).
		OrderBy("eg.employee_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.EmployeeGoal, 0)
	for rows.Next() {
		goal := &domain.EmployeeGoal{}

		err := rows.Scan(
			&goal.ID,
			&goal.EmployeeID,
			&goal.EmployeeName,
			&goal.Month,
			&goal.TargetAmount,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta de funcionário: %w", err)
		}

		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *employeeGoalRepository) SaveOrUpdate(goal *domain.EmployeeGoal) error {
	query := squirrel.StatementBuilder.
		Insert("employee_goals").
		Columns("id", "employee_id", "employee_name", "month", "target_amount").
		Values(
			goal.ID,
			goal.EmployeeID,
			goal.EmployeeName,
			goal.Month,
			goal.TargetAmount,
		).
		Suffix(`
			ON CONFLICT (employee_id, month) DO UPDATE SET
				employee_name = EXCLUDED.employee_name,
				target_amount = EXCLUDED.target_amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
