package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vidvault/internal/dbx"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/uploadhistory"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/users"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/videometa"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	VideoMetadata(db dbx.DBTX) videometa.Repository
	UploadHistory(db dbx.DBTX) uploadhistory.Repository
}
