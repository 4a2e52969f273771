// Package services implements the application operations behind the HTTP
// API: user management, uploads, listing, rename/delete and quota
// accounting. Services own no in-process state between requests; durable
// state lives in the relational store and the object store.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/vidvault/internal/common"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, repomanager repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: repomanager}
}

func (s *UserService) Create(ctx context.Context, name string) (*models.User, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	userRepo := s.repomanager.Users(s.db)

	user := &models.User{ID: uuid.New().String(), Name: name}

	user, err := userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: creating user: %v", common.ErrPersistence, err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {

	userRepo := s.repomanager.Users(s.db)

	result, err := userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing users: %v", common.ErrPersistence, err)
	}

	return result, nil
}

// Delete removes the user. Video metadata referencing the user is left in
// place; its uploader_name snapshot keeps attributing old uploads.
func (s *UserService) Delete(ctx context.Context, id string) error {

	userRepo := s.repomanager.Users(s.db)

	if err := userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting user: %v", common.ErrPersistence, err)
	}

	return nil
}
