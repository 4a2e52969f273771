package videometa

import (
	"context"

	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, meta *models.VideoMetadata) error
	GetAll(ctx context.Context) ([]*models.VideoMetadata, error)
	UpdateKey(ctx context.Context, oldKey string, newKey string) error
	Delete(ctx context.Context, key string) error
}
