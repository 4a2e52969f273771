package services

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/vidvault/internal/common"
	"github.com/dmitrijs2005/vidvault/internal/dbx"
	"github.com/dmitrijs2005/vidvault/internal/keyx"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

// UploadInput carries one upload request: the payload plus uploader
// identity and the original filename. Uploader identity is optional; an
// upload without it is stored but attributed to "Unknown" in listings.
type UploadInput struct {
	FileName     string
	Size         int64
	ContentType  string
	Body         io.Reader
	UploaderID   string
	UploaderName string
}

// UploadResult reports the stored key and, when a public base URL is
// configured, a directly fetchable URL (empty otherwise).
type UploadResult struct {
	Key string
	URL string
}

// Upload validates the payload against the size ceiling and the monthly
// quota, writes it to the object store under a sanitized unique key, and
// records metadata and a ledger entry.
//
// The quota check and the ledger write are not one atomic step:
// concurrent uploads can both pass the check before either ledger entry
// lands. Accepted for a single-tenant, low-concurrency deployment.
//
// Any object-store failure aborts before local writes. A local write
// failure after a successful object write is not rolled back: the object
// stays in the bucket unindexed, and the orphan key is logged.
func (s *VideoService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {

	if in.Size > s.config.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", common.ErrPayloadTooLarge, in.Size, s.config.MaxUploadBytes)
	}

	historyRepo := s.repomanager.UploadHistory(s.db)

	from, to := monthWindow(timeNow())
	used, err := historyRepo.SumBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: summing usage: %v", common.ErrPersistence, err)
	}
	if used+in.Size > s.config.MonthlyQuotaBytes {
		return nil, fmt.Errorf("%w: %d of %d bytes used", common.ErrQuotaExceeded, used, s.config.MonthlyQuotaBytes)
	}

	key := keyx.UploadKey(in.FileName, timeNow())

	if err := s.gateway.Put(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		if in.UploaderID != "" {
			metaRepo := s.repomanager.VideoMetadata(tx)
			meta := &models.VideoMetadata{
				VideoKey:     key,
				UploaderID:   in.UploaderID,
				UploaderName: in.UploaderName,
			}
			if err := metaRepo.Create(ctx, meta); err != nil {
				return err
			}
		}

		ledger := s.repomanager.UploadHistory(tx)
		return ledger.Append(ctx, &models.UploadHistoryEntry{Size: in.Size})
	})

	if err != nil {
		s.logger.Error(ctx, "upload recorded object but not metadata; key is unindexed",
			"key", key, "error", err.Error())
		return nil, fmt.Errorf("%w: recording upload: %v", common.ErrPersistence, err)
	}

	return &UploadResult{Key: key, URL: s.publicURL(key)}, nil
}
