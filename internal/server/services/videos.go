package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vidvault/internal/common"
	"github.com/dmitrijs2005/vidvault/internal/keyx"
	"github.com/dmitrijs2005/vidvault/internal/logging"
	sc "github.com/dmitrijs2005/vidvault/internal/server/config"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/objectstore"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/repomanager"
)

// videoExtensions is the allow-list applied to bucket listings,
// case-insensitive.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".avi":  {},
	".mkv":  {},
	".webm": {},
}

type VideoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     objectstore.Gateway
	config      *sc.Config
	logger      logging.Logger
}

func NewVideoService(db *sql.DB, repomanager repomanager.RepositoryManager,
	gateway objectstore.Gateway, config *sc.Config, logger logging.Logger) *VideoService {
	return &VideoService{
		db:          db,
		repomanager: repomanager,
		gateway:     gateway,
		config:      config,
		logger:      logger.With("module", "videos"),
	}
}

// publicURL returns a directly fetchable URL for key, or "" when no
// public base is configured (caller treats that as "preview unavailable").
func (s *VideoService) publicURL(key string) string {
	if s.config.S3PublicBaseURL == "" {
		return ""
	}
	return strings.TrimSuffix(s.config.S3PublicBaseURL, "/") + "/" + key
}

func hasVideoExtension(key string) bool {
	i := strings.LastIndexByte(key, '.')
	if i < 0 {
		return false
	}
	_, ok := videoExtensions[strings.ToLower(key[i:])]
	return ok
}

// List assembles videos from the bucket listing joined with uploader
// metadata by key. Ordering is whatever the object store returns;
// presentation-layer sorting is the caller's concern.
func (s *VideoService) List(ctx context.Context) ([]*models.Video, error) {

	objects, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}

	metaRepo := s.repomanager.VideoMetadata(s.db)
	metas, err := metaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading metadata: %v", common.ErrPersistence, err)
	}

	uploaderByKey := make(map[string]string, len(metas))
	for _, m := range metas {
		uploaderByKey[m.VideoKey] = m.UploaderName
	}

	result := make([]*models.Video, 0, len(objects))
	for _, obj := range objects {
		if !hasVideoExtension(obj.Key) {
			continue
		}
		uploader, ok := uploaderByKey[obj.Key]
		if !ok {
			uploader = models.UnknownUploader
		}
		result = append(result, &models.Video{
			Key:          obj.Key,
			Name:         strings.TrimPrefix(obj.Key, keyx.Namespace),
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          s.publicURL(obj.Key),
			Uploader:     uploader,
		})
	}

	return result, nil
}

// Rename moves a video to a key derived from the new display name:
// copy to the new key, delete the old key, repoint the metadata row.
// The three steps are sequential with no rollback; each failure window
// is surfaced as a distinct error so it can be reconciled out of band.
func (s *VideoService) Rename(ctx context.Context, oldKey string, newName string) (string, error) {

	if !keyx.InNamespace(oldKey) {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidKey, oldKey)
	}
	if strings.TrimSpace(newName) == "" {
		return "", fmt.Errorf("%w: new name is required", common.ErrValidation)
	}

	newKey := keyx.RenameKey(newName, oldKey)

	// Idempotent no-op: nothing to move.
	if newKey == oldKey {
		return oldKey, nil
	}

	if err := s.gateway.Copy(ctx, oldKey, newKey); err != nil {
		// No side effects yet; safe to retry.
		return "", err
	}

	if err := s.gateway.Delete(ctx, oldKey); err != nil {
		// Content now exists under both keys, metadata still points at
		// the old one.
		s.logger.Error(ctx, "rename left duplicate content",
			"old_key", oldKey, "new_key", newKey, "error", err.Error())
		return "", fmt.Errorf("%w: %s and %s: %v", common.ErrDuplicateContent, oldKey, newKey, err)
	}

	metaRepo := s.repomanager.VideoMetadata(s.db)
	if err := metaRepo.UpdateKey(ctx, oldKey, newKey); err != nil {
		// The object has moved but metadata still references the old key;
		// listings will show the new key as Unknown until reconciled.
		s.logger.Error(ctx, "rename left stale metadata",
			"old_key", oldKey, "new_key", newKey, "error", err.Error())
		return "", fmt.Errorf("%w: %s: %v", common.ErrMetadataStale, oldKey, err)
	}

	return newKey, nil
}

// Delete removes the object and then its metadata row. A failing
// object-store delete (already-removed object) is logged and tolerated
// so the operation stays idempotent end to end.
func (s *VideoService) Delete(ctx context.Context, key string) error {

	if !keyx.InNamespace(key) {
		return fmt.Errorf("%w: %q", common.ErrInvalidKey, key)
	}

	if err := s.gateway.Delete(ctx, key); err != nil {
		s.logger.Warn(ctx, "object delete failed, removing metadata anyway",
			"key", key, "error", err.Error())
	}

	metaRepo := s.repomanager.VideoMetadata(s.db)
	if err := metaRepo.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: deleting metadata: %v", common.ErrPersistence, err)
	}

	return nil
}
