package uploadhistory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

type Repository interface {
	Append(ctx context.Context, entry *models.UploadHistoryEntry) error
	SumBetween(ctx context.Context, from time.Time, to time.Time) (int64, error)
	MonthlyTotals(ctx context.Context, months int) ([]*models.MonthUsage, error)
}
