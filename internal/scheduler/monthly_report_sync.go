package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

// MonthlyReportSyncConfig representa a configuração do agendador de fechamento mensal
type MonthlyReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	StoreIDs     []int64
}

// MonthlyReportSyncService gerencia o agendamento e a persistência do fechamento mensal de vendas
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	reporter            reporting.Reporter
	monthlyReportRepo   repository.MonthlyReportRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de fechamento mensal
func NewMonthlyReportSyncService(
	reporter reporting.Reporter,
	monthlyReportRepo repository.MonthlyReportRepository,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule: appConfig.MonthlyReportSync.CronSchedule,
		SyncEnabled:  appConfig.MonthlyReportSync.Enabled,
		StoreIDs:     appConfig.DefaultStoreIDs,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"stores":        len(syncConfig.StoreIDs),
	}).Info("Configuração do agendador de fechamento mensal carregada")

	return &MonthlyReportSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		reporter:          reporter,
		monthlyReportRepo: monthlyReportRepo,
		syncRunning:       false,
		now:               time.Now,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento mensal desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fechamento mensal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento mensal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fechamento mensal")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports gera e persiste o relatório consolidado do mês anterior
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.config.StoreIDs) == 0 {
		logrus.Warn("Nenhuma loja configurada para o fechamento mensal")
		return
	}

	start, end := previousMonthBounds(startTime)
	month := start.Format("01-2006")

	logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"stores":     len(s.config.StoreIDs),
	}).Info("Iniciando fechamento mensal de vendas")

	// Um snapshot por loja, mais o consolidado de todas as lojas
	saved := 0
	for _, storeID := range s.config.StoreIDs {
		if s.generateAndSave(month, start, end, []int64{storeID}, strconv.FormatInt(storeID, 10)) {
			saved++
		}
	}

	if s.generateAndSave(month, start, end, s.config.StoreIDs, "all") {
		saved++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"month":     month,
		"snapshots": saved,
	}).Info("Fechamento mensal concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

// generateAndSave gera o relatório do período e salva o snapshot
func (s *MonthlyReportSyncService) generateAndSave(month string, start, end time.Time, storeIDs []int64, storeKey string) bool {
	filters := &domain.ReportFilters{
		StartDate: &start,
		EndDate:   &end,
		StoreIDs:  storeIDs,
		Type:      domain.SaleTypeAll,
	}

	report, err := s.reporter.GenerateSalesReport(filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"month":     month,
			"store_key": storeKey,
			"error":     err.Error(),
		}).Error("Erro ao gerar relatório para o fechamento mensal")
		return false
	}

	snapshot := &domain.MonthlyReportSnapshot{
		Month:    month,
		StoreKey: storeKey,
		Report:   report,
	}

	if err := s.monthlyReportRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"month":     month,
			"store_key": storeKey,
			"error":     err.Error(),
		}).Error("Erro ao salvar snapshot do fechamento mensal")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"month":     month,
		"store_key": storeKey,
		"employees": len(report.Employees),
	}).Info("Snapshot do fechamento mensal salvo com sucesso")

	return true
}

// previousMonthBounds retorna o primeiro e o último dia do mês anterior à referência
func previousMonthBounds(ref time.Time) (time.Time, time.Time) {
	firstOfCurrent := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := firstOfCurrent.AddDate(0, -1, 0)
	end := firstOfCurrent.AddDate(0, 0, -1)
	return start, end
}

// TriggerManualSync inicia manualmente um fechamento mensal
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento mensal manual")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual do agendador. Os campos de última execução
// são lidos sob o mutex, pois a goroutine de sincronização os escreve.
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"stores":                 s.config.StoreIDs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
