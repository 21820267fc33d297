package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSalesReport retorna o relatório de vendas agregado por funcionário
func GetSalesReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		storeIDs, err := parseStoreIDsParam(query.Get("store_ids"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "store_ids inválido, use uma lista de inteiros separados por vírgula", nil)
			return
		}

		saleType := domain.SaleType(query.Get("tipo"))
		if saleType != "" && !domain.ValidSaleType(saleType) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de venda inválido. Valores aceitos: produto, servico, vendas_balcao, todos", nil)
			return
		}

		filters := &domain.ReportFilters{
			StartDate: startDate,
			EndDate:   endDate,
			StoreIDs:  storeIDs,
			Type:      saleType,
		}

		logger.WithFields(log.Fields{
			"start_date": query.Get("start_date"),
			"end_date":   query.Get("end_date"),
			"store_ids":  query.Get("store_ids"),
			"tipo":       query.Get("tipo"),
		}).Info("sales-report: gerando relatório de vendas")

		report, err := service.GenerateSalesReport(filters)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"employees": len(report.Employees),
		}).Info("sales-report: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("sales-report: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	if errors.Is(err, reporting.ErrNoStoresConfigured) {
		apiErrors.WriteError(w, apiErrors.ErrNoStoreConfigured, "Nenhuma loja informada ou configurada", nil)
		return
	}

	var upstream *apiErrors.UpstreamError
	if errors.As(err, &upstream) {
		logger.WithError(err).Error("sales-report: erro na API de comércio")
		apiErrors.WriteUpstreamError(w, upstream)
		return
	}

	logger.WithError(err).Error("sales-report: erro ao gerar relatório de vendas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório de vendas", nil)
}

func parseStoreIDsParam(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}
