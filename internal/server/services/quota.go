package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vidvault/internal/common"
	sc "github.com/dmitrijs2005/vidvault/internal/server/config"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/repomanager"
)

// timeNow is indirected for tests.
var timeNow = time.Now

// monthWindow returns the half-open [start, end) window of the UTC
// calendar month containing t. The UTC convention is held fixed across
// the ledger.
func monthWindow(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

type QuotaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewQuotaService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *QuotaService {
	return &QuotaService{db: db, repomanager: repomanager, config: config}
}

// CurrentUsage returns bytes uploaded in the current UTC month and the
// configured monthly limit.
func (s *QuotaService) CurrentUsage(ctx context.Context) (int64, int64, error) {

	historyRepo := s.repomanager.UploadHistory(s.db)

	from, to := monthWindow(timeNow())
	used, err := historyRepo.SumBetween(ctx, from, to)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: summing usage: %v", common.ErrPersistence, err)
	}

	return used, s.config.MonthlyQuotaBytes, nil
}

// History returns per-month totals for the configured number of recent
// months, most recent first.
func (s *QuotaService) History(ctx context.Context) ([]*models.MonthUsage, error) {

	historyRepo := s.repomanager.UploadHistory(s.db)

	result, err := historyRepo.MonthlyTotals(ctx, s.config.HistoryMonths)
	if err != nil {
		return nil, fmt.Errorf("%w: usage history: %v", common.ErrPersistence, err)
	}

	return result, nil
}
