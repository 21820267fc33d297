package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	monthlyReportsTable = "monthly_reports mr"
)

type MonthlyReportRepository interface {
	GetByMonth(month string, storeKey string) (*domain.MonthlyReportSnapshot, error)
	SaveOrUpdate(snapshot *domain.MonthlyReportSnapshot) error
}

type monthlyReportRepository struct {
	conn *postgres.Connection
}

func NewMonthlyReportRepository(conn *postgres.Connection) MonthlyReportRepository {
	return &monthlyReportRepository{
		conn: conn,
	}
}

func (r *monthlyReportRepository) GetByMonth(month string, storeKey string) (*domain.MonthlyReportSnapshot, error) {
	query, args, err := squirrel.
		Select("mr.id, mr.month, mr.store_key, mr.report, mr.created_at, mr.updated_at").
		From(monthlyReportsTable).
		Where(squirrel.Eq{"mr.month": month, "mr.store_key": storeKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.MonthlyReportSnapshot{}
	var reportJSON []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Month,
		&snapshot.StoreKey,
		&reportJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar o relatório mensal: %w", err)
	}

	report := &domain.SalesReport{}
	if err := json.Unmarshal(reportJSON, report); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o relatório mensal: %w", err)
	}
	snapshot.Report = report

	return snapshot, nil
}

func (r *monthlyReportRepository) SaveOrUpdate(snapshot *domain.MonthlyReportSnapshot) error {
	reportJSON, err := json.Marshal(snapshot.Report)
	if err != nil {
		return fmt.Errorf("erro ao codificar o relatório mensal: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("monthly_reports").
		Columns("month", "store_key", "report").
		Values(
			snapshot.Month,
			snapshot.StoreKey,
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (month, store_key) DO UPDATE SET
				report = EXCLUDED.report,
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
