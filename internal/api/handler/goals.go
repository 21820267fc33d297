package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/usecases/goals"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

type setGoalRequest struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Month        string  `json:"month"`
	TargetAmount float64 `json:"target_amount"`
}

// ListEmployeeGoals retorna as metas cadastradas para um mês (mm-yyyy)
func ListEmployeeGoals(service goals.GoalManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := r.URL.Query().Get("month")
		if month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o mês no formato mm-yyyy", nil)
			return
		}

		result, err := service.ListGoals(month)
		if err != nil {
			if errors.Is(err, goals.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato mm-yyyy", nil)
				return
			}

			logger.WithError(err).Error("goals: erro ao listar metas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month": month,
			"goals": len(result),
		}).Info("goals: metas listadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("goals: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SetEmployeeGoal cadastra ou atualiza a meta de um funcionário para um mês
func SetEmployeeGoal(service goals.GoalManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req setGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.EmployeeID == "" || req.Month == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "employee_id e month são obrigatórios", nil)
			return
		}

		goal, err := service.SetGoal(req.EmployeeID, req.EmployeeName, req.Month, req.TargetAmount)
		if err != nil {
			if errors.Is(err, goals.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato mm-yyyy", nil)
				return
			}

			if errors.Is(err, goals.ErrNegativeTarget) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A meta não pode ser negativa", nil)
				return
			}

			logger.WithError(err).Error("goals: erro ao salvar meta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar meta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"employee_id": goal.EmployeeID,
			"month":       goal.Month,
		}).Info("goals: meta salva com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(goal); err != nil {
			logger.WithError(err).Error("goals: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
