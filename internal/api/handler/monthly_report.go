package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/goals"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// GetMonthlySalesReport retorna o fechamento mensal com as metas de cada
// funcionário aplicadas. Serve o snapshot persistido pelo agendador quando
// existe; caso contrário calcula o relatório sob demanda a partir do upstream.
func GetMonthlySalesReport(
	repo repository.MonthlyReportRepository,
	reportingService reporting.Reporter,
	goalService goals.GoalManager,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		year := r.URL.Query().Get("year")

		if month == "" || year == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar mês e ano nos parâmetros", nil)
			return
		}

		// Validar mês (entre 01 e 12)
		monthNum, err := strconv.Atoi(month)
		if err != nil || len(month) != 2 || monthNum < 1 || monthNum > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use formato de dois dígitos (01-12)", nil)
			return
		}

		// Validar ano (4 dígitos)
		yearNum, err := strconv.Atoi(year)
		if err != nil || len(year) != 4 || yearNum < 1000 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		storeKey := r.URL.Query().Get("store_key")
		if storeKey == "" {
			storeKey = "all"
		}
		if storeKey != "all" {
			if _, err := strconv.ParseInt(storeKey, 10, 64); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, `store_key inválida, use o ID de uma loja ou "all"`, nil)
				return
			}
		}

		// Formar o período no formato esperado mm-yyyy
		period := fmt.Sprintf("%s-%s", month, year)

		logger.WithFields(log.Fields{
			"period":    period,
			"store_key": storeKey,
		}).Info("monthly-report: buscando fechamento mensal")

		snapshot, err := repo.GetByMonth(period, storeKey)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period": period,
			}).Error("monthly-report: erro ao buscar fechamento mensal")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fechamento mensal", nil)
			return
		}

		if snapshot == nil {
			snapshot, err = computeMonthlySnapshot(reportingService, period, storeKey)
			if err != nil {
				writeReportError(w, logger, err)
				return
			}
			logger.WithFields(log.Fields{
				"period": period,
			}).Info("monthly-report: snapshot ausente, relatório calculado sob demanda")
		}

		if applied, err := goalService.ApplyTargets(snapshot.Report, period); err != nil {
			logger.WithError(err).Warn("monthly-report: erro ao aplicar metas, retornando relatório sem metas")
		} else {
			snapshot.Report = applied
		}

		logger.WithFields(log.Fields{
			"period":    period,
			"employees": len(snapshot.Report.Employees),
		}).Info("monthly-report: fechamento mensal recuperado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("monthly-report: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// computeMonthlySnapshot recalcula o relatório do mês quando não há snapshot
// persistido. O período mm-yyyy já foi validado pelo handler.
func computeMonthlySnapshot(
	reportingService reporting.Reporter,
	period string,
	storeKey string,
) (*domain.MonthlyReportSnapshot, error) {
	ref, err := time.ParseInLocation("01-2006", period, time.Local)
	if err != nil {
		return nil, err
	}
	start, end := domain.MonthBounds(ref)

	filters := &domain.ReportFilters{
		StartDate: &start,
		EndDate:   &end,
		Type:      domain.SaleTypeAll,
	}
	if storeKey != "all" {
		storeID, err := strconv.ParseInt(storeKey, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chave de loja inválida %q: %w", storeKey, err)
		}
		filters.StoreIDs = []int64{storeID}
	}

	report, err := reportingService.GenerateSalesReport(filters)
	if err != nil {
		return nil, err
	}

	return &domain.MonthlyReportSnapshot{
		Month:    period,
		StoreKey: storeKey,
		Report:   report,
	}, nil
}
