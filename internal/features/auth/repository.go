package auth

import (
	"context"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"
)

// SessionRepository persists the single current session under one key.
type SessionRepository interface {
	Load(ctx context.Context) *models.User
	Save(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

type SessionRepositoryImpl struct {
	Store *storage.Store
}

func NewSessionRepository(store *storage.Store) SessionRepository {
	return &SessionRepositoryImpl{Store: store}
}

func (r *SessionRepositoryImpl) Load(ctx context.Context) *models.User {
	return storage.Load[*models.User](ctx, r.Store, models.KeyCurrentUser, nil)
}

func (r *SessionRepositoryImpl) Save(ctx context.Context, user models.User) error {
	return storage.Save(ctx, r.Store, models.KeyCurrentUser, user)
}

func (r *SessionRepositoryImpl) Clear(ctx context.Context) error {
	return r.Store.Remove(ctx, models.KeyCurrentUser)
}
